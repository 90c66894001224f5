package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nextgen-academy/academy-api/internal/domain/model"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
	"github.com/nextgen-academy/academy-api/internal/mocks"
)

func TestFAQService_CreateAndValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFAQRepository(ctrl)
	svc, err := NewFAQService(repo)
	require.NoError(t, err)

	req := &model.CreateFAQRequest{Question: "What are the class timings?", Answer: "9am to 5pm, Monday through Friday."}
	repo.EXPECT().Create(gomock.Any(), req).Return(&model.FAQ{ID: "f1", Question: req.Question}, nil)

	faq, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "f1", faq.ID)

	_, err = svc.Create(context.Background(), &model.CreateFAQRequest{Question: "", Answer: "x"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestFAQService_UpdateRequiresAField(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, err := NewFAQService(mocks.NewMockFAQRepository(ctrl))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "f1", model.UpdateFAQRequest{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestFAQService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFAQRepository(ctrl)
	svc, err := NewFAQService(repo)
	require.NoError(t, err)

	repo.EXPECT().Delete(gomock.Any(), "f1").Return(true, nil)
	assert.NoError(t, svc.Delete(context.Background(), "f1"))

	repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)
	assert.True(t, apperrors.IsNotFound(svc.Delete(context.Background(), "missing")))
}
