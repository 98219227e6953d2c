package commands

import (
	"context"
	"log/slog"

	"fishmarket/internal/core/domain/model/order"
	"fishmarket/internal/core/ports"
)

// ChangeOrderStatusCommandHandler drives the order lifecycle state machine.
// When the transition to out_for_delivery succeeds a one-time verification
// code is issued and returned for display to the admin; all other successful
// transitions return "".
type ChangeOrderStatusCommandHandler struct {
	uowFactory    OrderUoWFactory
	codeGenerator order.CodeGenerator
	publisher     ports.OrderEventPublisher
	logger        *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for admin status
// transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	codeGenerator order.CodeGenerator,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:    uowFactory,
		codeGenerator: codeGenerator,
		publisher:     publisher,
		logger:        logger.With("component", "change_order_status"),
	}
}

// Handle processes the transition and returns the updated order plus the
// verification code issued by an out_for_delivery transition. Invalid
// transitions and code mismatches leave the order untouched.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeOrderStatusCommand,
) (*order.Order, order.VerificationCode, error) {
	if err := cmd.Validate(); err != nil {
		return nil, "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, "", err
	}

	issued, err := aggregate.RequestTransition(cmd.Target(), cmd.EnteredCode(), h.codeGenerator.Generate())
	if err != nil {
		return nil, "", err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, "", err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, "", err
	}

	if h.publisher != nil {
		if err = h.publisher.PublishOrderStatusChanged(ctx, aggregate); err != nil {
			h.logger.Warn("publish order status changed failed",
				"order_id", aggregate.ID().String(), "status", aggregate.Status().String(), "error", err)
		}
	}

	return aggregate, issued, nil
}
