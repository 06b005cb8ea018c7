package service

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"taskhub/internal/adapter/database/sqlite"
	"taskhub/internal/adapter/database/sqlite/repository"
	"taskhub/internal/core/apperr"
	"taskhub/internal/core/model/request"
	"taskhub/internal/core/port"
	"taskhub/pkg/auth"
	"taskhub/pkg/test"
)

type AuthServiceSuite struct {
	suite.Suite
	DB     *sqlite.DB
	Users  port.UserRepository
	Tokens port.TokenManager
	Svc    *AuthService
}

var ctx = context.Background()

func (s *AuthServiceSuite) SetupTest() {
	s.DB = test.InitTestDB()
	s.Users = repository.NewUserRepository(s.DB)
	s.Tokens = auth.NewJWT("test-secret")
	s.Svc = NewAuthService(s.Users, s.Tokens)
}

func (s *AuthServiceSuite) TearDownTest() {
	if s.DB != nil {
		s.DB.Close()
	}
}

func TestAuthServiceSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) TestRegisterCreatesUserAndToken() {
	user, token, err := s.Svc.Register(ctx, &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret99",
	})

	Expect(err).To(BeNil())
	Expect(user.ID).To(BeNumerically(">", 0))
	Expect(user.Username).To(Equal("alice"))
	Expect(user.Email).To(Equal("alice@example.com"))
	Expect(user.EncryptedPassword).To(BeEmpty())

	subject, err := s.Tokens.Verify(token)
	Expect(err).To(BeNil())
	Expect(subject).To(Equal(user.UUID.String()))
}

func (s *AuthServiceSuite) TestRegisterNormalizesEmail() {
	user, _, err := s.Svc.Register(ctx, &request.RegisterRequest{
		Username: "  bob  ",
		Email:    "  Bob@EXAMPLE.com ",
		Password: "secret99",
	})

	Expect(err).To(BeNil())
	Expect(user.Email).To(Equal("bob@example.com"))
	Expect(user.Username).To(Equal("bob"))
}

func (s *AuthServiceSuite) TestRegisterDuplicateEmail() {
	_, _, err := s.Svc.Register(ctx, &request.RegisterRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "secret99",
	})
	Expect(err).To(BeNil())

	_, _, err = s.Svc.Register(ctx, &request.RegisterRequest{
		Username: "carol2",
		Email:    "CAROL@example.com",
		Password: "secret99",
	})

	Expect(apperr.IsKind(err, apperr.KindDuplicate)).To(BeTrue())
}

func (s *AuthServiceSuite) TestRegisterDuplicateUsername() {
	_, _, err := s.Svc.Register(ctx, &request.RegisterRequest{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "secret99",
	})
	Expect(err).To(BeNil())

	_, _, err = s.Svc.Register(ctx, &request.RegisterRequest{
		Username: "dave",
		Email:    "dave2@example.com",
		Password: "secret99",
	})

	Expect(apperr.IsKind(err, apperr.KindDuplicate)).To(BeTrue())
}

func (s *AuthServiceSuite) TestLoginWithValidCredentials() {
	_, _, err := s.Svc.Register(ctx, &request.RegisterRequest{
		Username: "erin",
		Email:    "erin@example.com",
		Password: "secret99",
	})
	Expect(err).To(BeNil())

	user, token, err := s.Svc.Login(ctx, &request.LoginRequest{
		Email:    "erin@example.com",
		Password: "secret99",
	})

	Expect(err).To(BeNil())
	Expect(user.Username).To(Equal("erin"))
	Expect(user.EncryptedPassword).To(BeEmpty())
	Expect(token).To(Not(BeEmpty()))
}

func (s *AuthServiceSuite) TestLoginWithWrongPassword() {
	_, _, err := s.Svc.Register(ctx, &request.RegisterRequest{
		Username: "frank",
		Email:    "frank@example.com",
		Password: "secret99",
	})
	Expect(err).To(BeNil())

	_, _, err = s.Svc.Login(ctx, &request.LoginRequest{
		Email:    "frank@example.com",
		Password: "wrong-password",
	})

	Expect(apperr.IsKind(err, apperr.KindInvalidCredentials)).To(BeTrue())
}

func (s *AuthServiceSuite) TestLoginWithUnknownEmail() {
	_, _, err := s.Svc.Login(ctx, &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Unknown email and wrong password are indistinguishable.
	Expect(apperr.IsKind(err, apperr.KindInvalidCredentials)).To(BeTrue())
}
