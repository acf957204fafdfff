package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/snackops/snackledger/internal/models"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)

	reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	writer.EXPECT().Save(gomock.Any(), "alice", gomock.Any(), models.RoleMember).Return(uuid.New(), nil)

	svc := NewAuthService(reader, writer, NewMockTokenGenerator(ctrl), nil)
	assert.NoError(t, svc.Register(ctx, "alice", "password"))
}

func TestAuthService_Register_AdminAllowlist(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)

	reader.EXPECT().GetByUsername(gomock.Any(), "boss").Return(nil, nil)
	writer.EXPECT().Save(gomock.Any(), "boss", gomock.Any(), models.RoleAdmin).Return(uuid.New(), nil)

	svc := NewAuthService(reader, writer, NewMockTokenGenerator(ctrl), []string{"boss"})
	assert.NoError(t, svc.Register(ctx, "boss", "password"))
}

func TestAuthService_Register_UserAlreadyExists(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.UserDB{UserID: uuid.New(), Username: "alice"}, nil)

	svc := NewAuthService(reader, NewMockUserWriter(ctrl), NewMockTokenGenerator(ctrl), nil)
	err := svc.Register(ctx, "alice", "password")

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	tokens := NewMockTokenGenerator(ctrl)

	reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.UserDB{
		UserID:       userID,
		Username:     "alice",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}, nil)
	tokens.EXPECT().Generate(gomock.Any(), userID, "alice", models.RoleAdmin).Return("signed-token", nil)

	svc := NewAuthService(reader, NewMockUserWriter(ctrl), tokens, nil)
	token, err := svc.Login(ctx, "alice", "password")

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		PasswordHash: string(hash),
	}, nil)

	svc := NewAuthService(reader, NewMockUserWriter(ctrl), NewMockTokenGenerator(ctrl), nil)
	_, err = svc.Login(ctx, "alice", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UserDoesNotExist(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	reader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

	svc := NewAuthService(reader, NewMockUserWriter(ctrl), NewMockTokenGenerator(ctrl), nil)
	_, err := svc.Login(ctx, "ghost", "password")

	assert.ErrorIs(t, err, ErrUserDoesNotExist)
}
