package domain

import "time"

// CategoryType — тип косметической категории.
type CategoryType string

const (
	CategorySkincare  CategoryType = "skincare"
	CategoryMakeup    CategoryType = "makeup"
	CategoryFragrance CategoryType = "fragrance"
	CategoryHair      CategoryType = "hair"
	CategoryBody      CategoryType = "body"
	CategoryOther     CategoryType = "other"
)

// ParseCategoryType разбирает тип категории, пустая строка трактуется как other.
func ParseCategoryType(s string) (CategoryType, bool) {
	if s == "" {
		return CategoryOther, true
	}
	switch CategoryType(s) {
	case CategorySkincare, CategoryMakeup, CategoryFragrance, CategoryHair, CategoryBody, CategoryOther:
		return CategoryType(s), true
	default:
		return "", false
	}
}

// Category описывает категорию продукта, уникальную по паре (имя, тип)
type Category struct {
	ID        int64
	Name      string
	Type      CategoryType
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCategory(name string, categoryType CategoryType) *Category {
	return &Category{
		Name: name,
		Type: categoryType,
	}
}
