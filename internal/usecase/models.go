package usecase

import (
	"time"

	"github.com/glowshelf/go-backend/internal/domain"
)

// PageSize — фиксированный размер страницы списка продуктов.
const PageSize = 10

// PRODUCT USECASE

// AddProductReq — запрос на добавление нового продукта.
type AddProductReq struct {
	OwnerID          int64
	Name             string
	BrandName        string
	CategoryName     string
	CategoryType     domain.CategoryType
	Shade            string
	Capacity         string
	PurchaseDate     *time.Time
	PurchaseLocation string
	ProductionDate   *time.Time
	PriceCents       *int64
	ExpirationDate   *time.Time
	OpenStatus       domain.OpenStatus
	OpenedDate       *time.Time
	Rating           *int
	Image            *ProductImage
}

// UpdateProductReq — запрос на обновление существующего продукта.
// Поля перезаписываются целиком, как в форме редактирования.
type UpdateProductReq struct {
	OwnerID          int64
	ProductID        int64
	Name             string
	BrandName        string
	CategoryName     string
	CategoryType     domain.CategoryType
	Shade            string
	Capacity         string
	PurchaseDate     *time.Time
	PurchaseLocation string
	ProductionDate   *time.Time
	PriceCents       *int64
	ExpirationDate   *time.Time
	OpenStatus       domain.OpenStatus
	OpenedDate       *time.Time
	Rating           *int
	Image            *ProductImage
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// QueryProductsReq — критерии фильтрации списка продуктов.
// Page и Status приходят из запроса как есть и нормализуются внутри:
// некорректная страница превращается в первую, неизвестный статус —
// в отсутствие фильтра.
type QueryProductsReq struct {
	OwnerID    int64
	Keyword    string
	Status     string
	CategoryID *int64
	Page       int
	Reference  time.Time
}

// ProductView — DTO продукта с отображаемыми именами бренда и категории
// и вычисленным статусом годности.
type ProductView struct {
	Product      domain.Product
	BrandName    string
	CategoryName string
	Status       domain.ExpirationStatus
	DaysLeft     *int
}

// ProductPageRes — страница отфильтрованного и отсортированного списка.
type ProductPageRes struct {
	Items       []ProductView
	TotalCount  int
	Page        int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// StatusSummaryRes — количество продуктов владельца в каждом статусе.
// Сумма по статусам всегда равна Total: каждый продукт попадает ровно
// в один статус, включая unknown.
type StatusSummaryRes struct {
	Expired int `json:"expired"`
	Urgent  int `json:"urgent"`
	Soon    int `json:"soon"`
	Good    int `json:"good"`
	Unknown int `json:"unknown"`
	Total   int `json:"total"`
}

// Add увеличивает счётчик соответствующего статуса.
func (s *StatusSummaryRes) Add(status domain.ExpirationStatus) {
	switch status {
	case domain.StatusExpired:
		s.Expired++
	case domain.StatusUrgent:
		s.Urgent++
	case domain.StatusSoon:
		s.Soon++
	case domain.StatusGood:
		s.Good++
	default:
		s.Unknown++
	}
	s.Total++
}

// Count возвращает счётчик указанного статуса.
func (s *StatusSummaryRes) Count(status domain.ExpirationStatus) int {
	switch status {
	case domain.StatusExpired:
		return s.Expired
	case domain.StatusUrgent:
		return s.Urgent
	case domain.StatusSoon:
		return s.Soon
	case domain.StatusGood:
		return s.Good
	default:
		return s.Unknown
	}
}

// ExpiringOverviewRes — сгруппированные списки для страницы «истекающие продукты».
type ExpiringOverviewRes struct {
	Expired []ProductView
	Urgent  []ProductView
	Soon    []ProductView
}

// INFRASTRUCTURE

// UploadImageReq — запрос на загрузку изображения продукта.
type UploadImageReq struct {
	ProductName string
	Image       *ProductImage
}

// WriteRawMessageReq — запрос на отправку сырого сообщения в брокер.
type WriteRawMessageReq struct {
	ProductID int64
	Payload   []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	ProductCreated OutboxEventType = "product.created"
	ProductUpdated OutboxEventType = "product.updated"
	ProductDeleted OutboxEventType = "product.deleted"
)

// OutboxEvent — событие изменения продукта, записываемое в одной транзакции
// с изменением и публикуемое воркером в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ProductID   int64
	OwnerID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// ProductChangePayload — JSON-содержимое события изменения продукта.
type ProductChangePayload struct {
	EventID    string `json:"event_id"`
	EventType  string `json:"event_type"`
	ProductID  int64  `json:"product_id"`
	OwnerID    int64  `json:"owner_id"`
	OccurredAt int64  `json:"occurred_at"`
}

// MAPPERS

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImageReq(productName string, image *ProductImage) *UploadImageReq {
	return &UploadImageReq{
		ProductName: productName,
		Image:       image,
	}
}

func NewWriteRawMessageReq(productID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		Payload:   payload,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, productID, ownerID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		ProductID: productID,
		OwnerID:   ownerID,
		Payload:   payload,
		Status:    Pending,
	}
}

func NewProductPageRes(items []ProductView, totalCount, page, totalPages int) *ProductPageRes {
	return &ProductPageRes{
		Items:       items,
		TotalCount:  totalCount,
		Page:        page,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1 && totalPages > 0,
	}
}
