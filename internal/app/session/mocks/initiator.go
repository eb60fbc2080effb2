package mocks

import (
	"context"

	"portal/internal/app/catalog"
	"portal/internal/app/purchase"

	"github.com/stretchr/testify/mock"
)

type Initiator struct {
	mock.Mock
}

func (m *Initiator) Initiate(ctx context.Context, pkg catalog.Package, phone string) (purchase.Outcome, error) {
	args := m.Called(ctx, pkg, phone)
	return args.Get(0).(purchase.Outcome), args.Error(1)
}
