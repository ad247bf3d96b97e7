package interfaces

import "context"

// IPaymentGateway abstracts the Mobbex operations API.
//
// ReleaseOperation unholds a withheld split payment and returns the gateway
// status message.
type IPaymentGateway interface {
	ReleaseOperation(ctx context.Context, operationUID string) (statusMessage string, err error)
}
