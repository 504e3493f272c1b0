package domain

import "fmt"

//region ValidationError

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

//endregion

//region PurchaseNotFoundError

type PurchaseNotFoundError struct {
	Msg string
}

func (e *PurchaseNotFoundError) Error() string {
	return e.Msg
}

func (e *PurchaseNotFoundError) Is(target error) bool {
	_, ok := target.(*PurchaseNotFoundError)
	return ok
}

func NewPurchaseNotFoundError(purchaseId int) *PurchaseNotFoundError {
	return &PurchaseNotFoundError{Msg: fmt.Sprintf("purchase %d not found", purchaseId)}
}

//endregion

//region ProductNotFoundError

type ProductNotFoundError struct {
	Msg       string
	ProductId int
}

func (e *ProductNotFoundError) Error() string {
	return e.Msg
}

func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

func NewProductNotFoundError(productId int) *ProductNotFoundError {
	return &ProductNotFoundError{
		Msg:       fmt.Sprintf("product %d does not exist", productId),
		ProductId: productId,
	}
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion

//region PurchaseCompletedError

type PurchaseCompletedError struct {
	Msg string
}

func (e *PurchaseCompletedError) Error() string {
	return e.Msg
}

func (e *PurchaseCompletedError) Is(target error) bool {
	_, ok := target.(*PurchaseCompletedError)
	return ok
}

//endregion

//region InsufficientStockError

type InsufficientStockError struct {
	Msg         string
	ProductId   int
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return e.Msg
}

func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

func NewInsufficientStockError(productId int, productName string) *InsufficientStockError {
	return &InsufficientStockError{
		Msg:         fmt.Sprintf("insufficient stock for product %d (%s)", productId, productName),
		ProductId:   productId,
		ProductName: productName,
	}
}

//endregion
