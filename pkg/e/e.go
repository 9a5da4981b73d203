package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки хранилища и целостности данных
	ErrStorageUnavailable   = fmt.Errorf("storage unavailable")
	ErrOwnerScopeViolation  = fmt.Errorf("owner scope violation")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrBrandNameRequired    = fmt.Errorf("brand name is required")
	ErrInvalidCategoryType  = fmt.Errorf("invalid category type")
	ErrInvalidDate          = fmt.Errorf("invalid date, expected YYYY-MM-DD")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidRating        = fmt.Errorf("rating must be between 1 and 5")
	ErrInvalidOpenStatus    = fmt.Errorf("invalid open status")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrInvalidProductID     = fmt.Errorf("invalid product id")

	// 401 Unauthorized
	ErrOwnerRequired = fmt.Errorf("owner id is required")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapStorage помечает ошибку репозитория как ошибку хранилища,
// сохраняя исходную цепочку для errors.Is.
func WrapStorage(err error) error {
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}
