package postgres

import "github.com/taskmate/taskmate-api/internal/core/domain"

var categoryDescriptor = Descriptor{
	Table:       "categories",
	IDColumn:    "categoryid",
	OwnerColumn: "userid",
	Fields: map[string]string{
		"name":   "name",
		"color":  "color",
		"userid": "userid",
	},
}

type CategoryRepository struct {
	*Repository[domain.Category]
}

func NewCategoryRepository(db Querier) *CategoryRepository {
	return &CategoryRepository{Repository: NewRepository[domain.Category](db, categoryDescriptor)}
}
