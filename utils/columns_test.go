package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnList(t *testing.T) {
	type inner struct {
		Id   string `db:"id"`
		Name string `db:"name"`
	}
	type outer struct {
		inner
		Extra   string `db:"extra"`
		Ignored string `db:"-"`
		NoTag   string
	}

	assert.Equal(t, []string{"id", "name"}, ColumnList[inner]())
	assert.Equal(t, []string{"id", "name", "extra"}, ColumnList[outer]())
}
