package contracts

import (
	"context"

	"lidio-service/internal/pkg/dto/requests"
	"lidio-service/internal/pkg/dto/responses"
)

type PaymentLinkUsecase interface {
	CreatePaymentLink(ctx context.Context, request *requests.CreatePaymentLink) (*responses.PaymentLink, error)
	PreviewPaymentLink(ctx context.Context, request *requests.CreatePaymentLink) (*responses.PaymentLinkPreview, error)
}
