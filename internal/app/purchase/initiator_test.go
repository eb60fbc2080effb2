package purchase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"portal/internal/app/catalog"
	"portal/internal/app/mpesa"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func oneDayPackage(t *testing.T) catalog.Package {
	t.Helper()
	price, err := catalog.ParsePrice("Ksh 20", catalog.KES)
	require.NoError(t, err)
	return catalog.Package{ID: 4, Price: price, Duration: "1 Day", Tier: catalog.TierLimited}
}

func TestNewRequest(t *testing.T) {
	req := NewRequest(oneDayPackage(t), "0712345678")

	assert.Equal(t, mpesa.STKPushRequest{
		Amount:      20,
		Phone:       "0712345678",
		Description: "Purchase 1 Day package",
	}, req)
}

func TestInitiateSucceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := NewMockGateway(ctrl)
	gateway.EXPECT().
		STKPush(gomock.Any(), mpesa.STKPushRequest{Amount: 20, Phone: "0712345678", Description: "Purchase 1 Day package"}).
		Return(mpesa.STKPushResponse{Success: true}, nil).
		Times(1)

	outcome, err := NewInitiator(gateway).Initiate(context.Background(), oneDayPackage(t), " 0712345678 ")
	require.NoError(t, err)

	assert.Equal(t, StatusSucceeded, outcome.Status)
	assert.Equal(t, ReasonNone, outcome.Reason)
	require.NotNil(t, outcome.Request)
	assert.Equal(t, "0712345678", outcome.Request.Phone)
	assert.Equal(t, []State{StateIdle, StateAwaitingPhoneInput, StateRequestInFlight, StateSucceeded, StateIdle}, outcome.Trail)
}

func TestInitiateFailed(t *testing.T) {
	tests := []struct {
		name   string
		resp   mpesa.STKPushResponse
		err    error
		reason Reason
	}{
		{name: "declined", resp: mpesa.STKPushResponse{Success: false}, reason: ReasonRejected},
		{name: "malformed", err: fmt.Errorf("%w: status 502", mpesa.ErrUnexpectedResponse), reason: ReasonRejected},
		{name: "unreachable", err: errors.New("dial tcp: connection refused"), reason: ReasonUnreachable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gateway := NewMockGateway(ctrl)
			gateway.EXPECT().STKPush(gomock.Any(), gomock.Any()).Return(tt.resp, tt.err).Times(1)

			outcome, err := NewInitiator(gateway).Initiate(context.Background(), oneDayPackage(t), "0712345678")
			require.NoError(t, err)

			assert.Equal(t, StatusFailed, outcome.Status)
			assert.Equal(t, tt.reason, outcome.Reason)
			assert.NotNil(t, outcome.Request)
			assert.Equal(t, []State{StateIdle, StateAwaitingPhoneInput, StateRequestInFlight, StateFailed, StateIdle}, outcome.Trail)
		})
	}
}

func TestInitiateBlankPhoneSendsNothing(t *testing.T) {
	for _, phone := range []string{"", "   ", "\t\n"} {
		ctrl := gomock.NewController(t)
		gateway := NewMockGateway(ctrl)
		gateway.EXPECT().STKPush(gomock.Any(), gomock.Any()).Times(0)

		outcome, err := NewInitiator(gateway).Initiate(context.Background(), oneDayPackage(t), phone)
		require.NoError(t, err)

		assert.Equal(t, StatusAborted, outcome.Status)
		assert.Nil(t, outcome.Request)
		assert.Equal(t, []State{StateIdle, StateAwaitingPhoneInput, StateIdle}, outcome.Trail)
		ctrl.Finish()
	}
}

func TestInitiateRepeatedAttemptsAreIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := NewMockGateway(ctrl)
	gomock.InOrder(
		gateway.EXPECT().STKPush(gomock.Any(), gomock.Any()).Return(mpesa.STKPushResponse{}, nil),
		gateway.EXPECT().STKPush(gomock.Any(), gomock.Any()).Return(mpesa.STKPushResponse{Success: true}, nil),
	)

	initiator := NewInitiator(gateway)
	first, err := initiator.Initiate(context.Background(), oneDayPackage(t), "0712345678")
	require.NoError(t, err)
	second, err := initiator.Initiate(context.Background(), oneDayPackage(t), "0712345678")
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, first.Status)
	assert.Equal(t, StatusSucceeded, second.Status)
}
