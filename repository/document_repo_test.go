package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListByUserRejectsEmptyID(t *testing.T) {
	repo := &documentRepo{}

	docs, err := repo.ListByUser(context.Background(), "")
	assert.Error(t, err)
	assert.Nil(t, docs)
}
