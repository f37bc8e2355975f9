package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Notifier struct {
	mock.Mock
}

func (n *Notifier) SendMessage(ctx context.Context, chatId string, text string) error {
	args := n.Called(chatId, text)
	return args.Error(0)
}
