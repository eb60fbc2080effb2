package purchase

//go:generate mockgen -source=initiator.go -destination=mock_gateway_test.go -package=purchase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portal/internal/app/catalog"
	"portal/internal/app/metrics"
	"portal/internal/app/mpesa"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusAborted   Status = "aborted"
)

// Reason qualifies a failed outcome.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonRejected    Reason = "rejected"
	ReasonUnreachable Reason = "unreachable"
)

// Outcome is the result of one initiation attempt. Request is nil when
// nothing was sent. Trail lists every state the attempt passed through.
type Outcome struct {
	Status  Status
	Reason  Reason
	Request *mpesa.STKPushRequest
	Trail   []State
}

// Gateway is the remote side of an STK push.
type Gateway interface {
	STKPush(ctx context.Context, req mpesa.STKPushRequest) (mpesa.STKPushResponse, error)
}

type Initiator struct {
	gateway Gateway
}

func NewInitiator(gateway Gateway) *Initiator {
	return &Initiator{gateway: gateway}
}

// NewRequest builds the gateway request for pkg. The amount comes from the
// validated price, so no text is parsed here.
func NewRequest(pkg catalog.Package, phone string) mpesa.STKPushRequest {
	return mpesa.STKPushRequest{
		Amount:      pkg.Price.Units(),
		Phone:       phone,
		Description: fmt.Sprintf("Purchase %s package", pkg.Duration),
	}
}

// Initiate runs one attempt for pkg. A blank phone cancels the attempt
// before anything is sent. At most one request reaches the gateway per call
// and failures are never retried. The returned error is only set when the
// attempt could not be driven at all.
func (i *Initiator) Initiate(ctx context.Context, pkg catalog.Package, phone string) (Outcome, error) {
	fsm := newMachine()

	if err := fsm.fire(ctx, triggerPrompt); err != nil {
		return Outcome{}, err
	}

	// whitespace-only input counts as a dismissed prompt
	phone = strings.TrimSpace(phone)
	if phone == "" {
		if err := fsm.fire(ctx, triggerAbort); err != nil {
			return Outcome{}, err
		}
		metrics.PurchaseAttempts.WithLabelValues(string(StatusAborted), string(ReasonNone)).Inc()
		return Outcome{Status: StatusAborted, Trail: fsm.trail}, nil
	}

	req := NewRequest(pkg, phone)
	if err := fsm.fire(ctx, triggerSubmit); err != nil {
		return Outcome{}, err
	}

	log := logrus.WithFields(logrus.Fields{
		"package_id": pkg.ID,
		"amount":     req.Amount,
	})

	outcome := Outcome{Request: &req}
	resp, err := i.gateway.STKPush(ctx, req)
	switch {
	case err != nil && errors.Is(err, mpesa.ErrUnexpectedResponse):
		log.WithError(err).Warn("stk push response not understood")
		outcome.Status, outcome.Reason = StatusFailed, ReasonRejected
	case err != nil:
		log.WithError(err).Error("stk push request failed")
		sentry.CaptureException(err)
		outcome.Status, outcome.Reason = StatusFailed, ReasonUnreachable
	case bool(resp.Success):
		log.Info("stk push accepted")
		outcome.Status = StatusSucceeded
	default:
		log.Info("stk push declined")
		outcome.Status, outcome.Reason = StatusFailed, ReasonRejected
	}

	result := triggerAccepted
	if outcome.Status != StatusSucceeded {
		result = triggerRejected
	}
	if err := fsm.fire(ctx, result); err != nil {
		return Outcome{}, err
	}
	if err := fsm.fire(ctx, triggerReset); err != nil {
		return Outcome{}, err
	}

	metrics.PurchaseAttempts.WithLabelValues(string(outcome.Status), string(outcome.Reason)).Inc()
	outcome.Trail = fsm.trail
	return outcome, nil
}
