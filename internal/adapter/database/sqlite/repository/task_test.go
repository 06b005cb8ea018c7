package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"taskhub/internal/adapter/database/sqlite"
	"taskhub/internal/core/apperr"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/port"
	"taskhub/pkg/test"
	"taskhub/pkg/test/factory"
)

type TaskRepositorySuite struct {
	suite.Suite
	DB    *sqlite.DB
	Repo  port.TaskRepository
	Users port.UserRepository
}

func (s *TaskRepositorySuite) SetupTest() {
	s.DB = test.InitTestDB()
	s.Repo = NewTaskRepository(s.DB)
	s.Users = NewUserRepository(s.DB)
}

func (s *TaskRepositorySuite) TearDownTest() {
	if s.DB != nil {
		test.CleanDB(s.T(), s.DB)
		s.DB.Close()
	}
}

func TestTaskRepositorySuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TaskRepositorySuite))
}

func (s *TaskRepositorySuite) createTask(title string, createdAt time.Time, customData ...map[string]any) domain.Task {
	data := map[string]any{
		"UUID":        uuid.New(),
		"Title":       title,
		"Description": "",
		"Status":      domain.TaskStatusTodo,
		"CreatedAt":   createdAt,
		"UpdatedAt":   createdAt,
	}

	for _, extra := range customData {
		for k, v := range extra {
			data[k] = v
		}
	}

	task, err := s.Repo.Create(ctx, factory.NewTask[domain.Task](data))
	Expect(err).To(BeNil())

	return task
}

func (s *TaskRepositorySuite) createUser(username, email string) domain.User {
	user, err := s.Users.Create(ctx, factory.NewUser[domain.User](map[string]any{
		"UUID":      uuid.New(),
		"Username":  username,
		"Email":     email,
		"CreatedAt": time.Now(),
		"UpdatedAt": time.Now(),
	}))
	Expect(err).To(BeNil())

	return user
}

func (s *TaskRepositorySuite) TestCreateRoundTrip() {
	due := time.Now().Add(48 * time.Hour)

	created := s.createTask("ship release", time.Now(), map[string]any{
		"Description": "cut the tag",
		"DueDate":     &due,
	})

	Expect(created.ID).To(BeNumerically(">", 0))
	Expect(created.Title).To(Equal("ship release"))
	Expect(created.Description).To(Equal("cut the tag"))
	Expect(created.Status).To(Equal(domain.TaskStatusTodo))
	Expect(created.DueDate).To(Not(BeNil()))
	Expect(*created.DueDate).To(BeTemporally("~", due, time.Second))
	Expect(created.CompletedAt).To(BeNil())
}

func (s *TaskRepositorySuite) TestCreateResolvesAssignee() {
	user := s.createUser("tara", "tara@example.com")

	created := s.createTask("with assignee", time.Now(), map[string]any{
		"AssignedTo": &user.ID,
	})

	Expect(created.Assignee).To(Not(BeNil()))
	Expect(created.Assignee.UUID).To(Equal(user.UUID))
	Expect(created.Assignee.Username).To(Equal("tara"))
	Expect(created.Assignee.Email).To(Equal("tara@example.com"))
}

func (s *TaskRepositorySuite) TestListNewestFirst() {
	base := time.Now()

	s.createTask("oldest", base.Add(-2*time.Hour))
	s.createTask("middle", base.Add(-time.Hour))
	s.createTask("newest", base)

	tasks, err := s.Repo.List(ctx, domain.TaskFilter{})

	Expect(err).To(BeNil())
	Expect(tasks).To(HaveLen(3))
	Expect(tasks[0].Title).To(Equal("newest"))
	Expect(tasks[1].Title).To(Equal("middle"))
	Expect(tasks[2].Title).To(Equal("oldest"))
}

func (s *TaskRepositorySuite) TestListFilterByStatus() {
	now := time.Now()

	s.createTask("pending", now)
	s.createTask("started", now, map[string]any{"Status": domain.TaskStatusInProgress})

	tasks, err := s.Repo.List(ctx, domain.TaskFilter{Status: domain.TaskStatusInProgress})

	Expect(err).To(BeNil())
	Expect(tasks).To(HaveLen(1))
	Expect(tasks[0].Title).To(Equal("started"))
}

func (s *TaskRepositorySuite) TestListFilterByAssigneeUUID() {
	user := s.createUser("uma", "uma@example.com")
	other := s.createUser("vic", "vic@example.com")

	now := time.Now()
	s.createTask("mine", now, map[string]any{"AssignedTo": &user.ID})
	s.createTask("theirs", now, map[string]any{"AssignedTo": &other.ID})
	s.createTask("nobody's", now)

	tasks, err := s.Repo.List(ctx, domain.TaskFilter{AssigneeUUID: user.UUID.String()})

	Expect(err).To(BeNil())
	Expect(tasks).To(HaveLen(1))
	Expect(tasks[0].Title).To(Equal("mine"))
}

func (s *TaskRepositorySuite) TestGetByUUIDUnknown() {
	_, err := s.Repo.GetByUUID(ctx, uuid.NewString())

	Expect(apperr.IsKind(err, apperr.KindNotFound)).To(BeTrue())
}

func (s *TaskRepositorySuite) TestGetByUUIDMalformed() {
	_, err := s.Repo.GetByUUID(ctx, "1234")

	Expect(apperr.IsKind(err, apperr.KindNotFound)).To(BeTrue())
}

func (s *TaskRepositorySuite) TestUpdatePersistsMutableColumns() {
	created := s.createTask("before", time.Now())

	now := time.Now()
	created.Title = "after"
	created.Description = "updated"
	created.Status = domain.TaskStatusDone
	created.CompletedAt = &now
	created.UpdatedAt = now

	updated, err := s.Repo.Update(ctx, created)

	Expect(err).To(BeNil())
	Expect(updated.Title).To(Equal("after"))
	Expect(updated.Description).To(Equal("updated"))
	Expect(updated.Status).To(Equal(domain.TaskStatusDone))
	Expect(updated.CompletedAt).To(Not(BeNil()))
}

func (s *TaskRepositorySuite) TestUpdateUnknownTask() {
	ghost := factory.NewTask[domain.Task](map[string]any{
		"UUID":   uuid.New(),
		"Title":  "ghost",
		"Status": domain.TaskStatusTodo,
	})

	_, err := s.Repo.Update(ctx, ghost)

	Expect(apperr.IsKind(err, apperr.KindNotFound)).To(BeTrue())
}

func (s *TaskRepositorySuite) TestDeleteByUUID() {
	created := s.createTask("disposable", time.Now())

	Expect(s.Repo.DeleteByUUID(ctx, created.UUID.String())).To(BeNil())

	_, err := s.Repo.GetByUUID(ctx, created.UUID.String())
	Expect(apperr.IsKind(err, apperr.KindNotFound)).To(BeTrue())
}

func (s *TaskRepositorySuite) TestDeleteByUUIDUnknown() {
	err := s.Repo.DeleteByUUID(ctx, uuid.NewString())

	Expect(apperr.IsKind(err, apperr.KindNotFound)).To(BeTrue())
}
