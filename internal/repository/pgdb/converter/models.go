package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID               int64      `db:"id"`
	OwnerID          int64      `db:"owner_id"`
	Name             string     `db:"name"`
	BrandID          int64      `db:"brand_id"`
	CategoryID       *int64     `db:"category_id"`
	Shade            string     `db:"shade"`
	Capacity         string     `db:"capacity"`
	PurchaseDate     time.Time  `db:"purchase_date"`
	PurchaseLocation string     `db:"purchase_location"`
	ProductionDate   *time.Time `db:"production_date"`
	PriceCents       *int64     `db:"price_cents"`
	ExpirationDate   *time.Time `db:"expiration_date"`
	OpenStatus       string     `db:"open_status"`
	OpenedDate       *time.Time `db:"opened_date"`
	Rating           *int       `db:"rating"`
	ImageKey         *string    `db:"image_key"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`
}

// BrandModel представляет запись таблицы brands в PostgreSQL.
type BrandModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Type      string     `db:"category_type"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ProductID   int64      `db:"product_id"`
	OwnerID     int64      `db:"owner_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
