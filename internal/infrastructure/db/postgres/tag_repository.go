package postgres

import "github.com/taskmate/taskmate-api/internal/core/domain"

var tagDescriptor = Descriptor{
	Table:       "tags",
	IDColumn:    "tagid",
	OwnerColumn: "userid",
	Fields: map[string]string{
		"name":   "name",
		"userid": "userid",
	},
}

type TagRepository struct {
	*Repository[domain.Tag]
}

func NewTagRepository(db Querier) *TagRepository {
	return &TagRepository{Repository: NewRepository[domain.Tag](db, tagDescriptor)}
}
