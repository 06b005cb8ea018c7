package validation

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"taskhub/internal/core/apperr"
	"taskhub/internal/core/model/request"
)

func TestCheckReportsJSONFieldNames(t *testing.T) {
	RegisterTestingT(t)

	err := Check(&request.RegisterRequest{
		Username: "ab",
		Email:    "not-an-email",
		Password: "123",
	})

	var appErr *apperr.Error
	Expect(errors.As(err, &appErr)).To(BeTrue())
	Expect(appErr.Kind).To(Equal(apperr.KindValidation))

	fields := map[string]string{}
	for _, f := range appErr.Fields {
		fields[f.Field] = f.Message
	}

	Expect(fields).To(HaveKey("username"))
	Expect(fields).To(HaveKey("email"))
	Expect(fields).To(HaveKey("password"))
	Expect(fields["username"]).To(Equal("username must be at least 3 characters"))
	Expect(fields["email"]).To(Equal("email must be a valid email"))
}

func TestCheckRequiredMessage(t *testing.T) {
	RegisterTestingT(t)

	err := Check(&request.CreateTaskRequest{})

	var appErr *apperr.Error
	Expect(errors.As(err, &appErr)).To(BeTrue())
	Expect(appErr.Fields).To(HaveLen(1))
	Expect(appErr.Fields[0].Field).To(Equal("title"))
	Expect(appErr.Fields[0].Message).To(Equal("title is required"))
}

func TestCheckAcceptsValidPayload(t *testing.T) {
	RegisterTestingT(t)

	err := Check(&request.LoginRequest{
		Email:    "someone@example.com",
		Password: "secret99",
	})

	Expect(err).To(BeNil())
}

func TestCheckOneOfMessage(t *testing.T) {
	RegisterTestingT(t)

	status := "archived"
	err := Check(&request.UpdateTaskRequest{Status: &status})

	var appErr *apperr.Error
	Expect(errors.As(err, &appErr)).To(BeTrue())
	Expect(appErr.Fields[0].Field).To(Equal("status"))
	Expect(appErr.Fields[0].Message).To(Equal("status must be one of: to-do in-progress done"))
}
