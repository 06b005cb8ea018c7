package http

import (
	"taskhub/internal/adapter/http/handler"
	"taskhub/internal/core/port"
	"taskhub/internal/core/service"
)

type Container struct {
	UserRepo port.UserRepository
	TaskRepo port.TaskRepository
	Tokens   port.TokenManager

	AuthUseCase port.AuthService
	UserUseCase port.UserService
	TaskUseCase port.TaskService

	UserHandler *handler.UserHandler
	TaskHandler *handler.TaskHandler
}

func NewContainer(users port.UserRepository, tasks port.TaskRepository, tokens port.TokenManager) *Container {
	authSvc := service.NewAuthService(users, tokens)
	userSvc := service.NewUserService(users)
	taskSvc := service.NewTaskService(tasks, users)

	userHandler := handler.NewUserHandler(authSvc, userSvc)
	taskHandler := handler.NewTaskHandler(taskSvc)

	return &Container{
		UserRepo: users,
		TaskRepo: tasks,
		Tokens:   tokens,

		AuthUseCase: authSvc,
		UserUseCase: userSvc,
		TaskUseCase: taskSvc,

		UserHandler: userHandler,
		TaskHandler: taskHandler,
	}
}
