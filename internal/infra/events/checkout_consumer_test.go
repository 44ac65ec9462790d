//go:build unit

package events_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/infra/events"
	"storefront-cart/tests/common/testutil"
	usecasemock "storefront-cart/tests/mock/usecase"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeReader struct {
	msgs []kafka.Message
}

func (r *fakeReader) ReadMessage(context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) Close() error { return nil }

func TestCheckoutConsumer(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the owner's cart for each checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := usecasemock.NewMockCartSessions(ctrl)
		store := usecasemock.NewMockCartStore(ctrl)

		sessions.EXPECT().For(gomock.Any(), "u-1").Return(store, nil)
		sessions.EXPECT().For(gomock.Any(), "u-2").Return(store, nil)
		store.EXPECT().Clear(gomock.Any()).Return(cart.Result{Removed: true, Persisted: true}).Times(2)

		reader := &fakeReader{msgs: []kafka.Message{
			{Value: []byte(`{"user_id":"u-1","order_id":9}`)},
			{Value: []byte(`not json`)},
			{Value: []byte(`{"user_id":"  "}`)},
			{Value: []byte(`{"user_id":"u-2"}`)},
		}}
		events.NewCheckoutConsumer(reader, sessions, testutil.DiscardLogger()).Run(ctx)

		assert.Empty(t, reader.msgs)
	})

	t.Run("session failure skips the message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := usecasemock.NewMockCartSessions(ctrl)
		sessions.EXPECT().For(gomock.Any(), "u-1").Return(nil, errors.New("storage down"))

		c := events.NewCheckoutConsumer(&fakeReader{}, sessions, testutil.DiscardLogger())
		c.Handle(ctx, kafka.Message{Value: []byte(`{"user_id":"u-1"}`)})
	})

	t.Run("user_id outside the owner format never opens a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := usecasemock.NewMockCartSessions(ctrl)

		c := events.NewCheckoutConsumer(&fakeReader{}, sessions, testutil.DiscardLogger())
		for _, raw := range []string{
			`{"user_id":"u 1"}`,
			`{"user_id":"<script>"}`,
			`{"user_id":"` + strings.Repeat("a", 129) + `"}`,
		} {
			c.Handle(ctx, kafka.Message{Value: []byte(raw)})
		}
	})
}
