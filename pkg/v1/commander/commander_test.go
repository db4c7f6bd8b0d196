package commander_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/soukwatch/pricetracker/pkg/v1/commander"
	"github.com/soukwatch/pricetracker/pkg/v1/commander/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUniSendSaveCommand(t *testing.T) {
	source := faker.DomainName()
	records := []json.RawMessage{
		json.RawMessage(`{"productId":"SKU-1","price":199.0}`),
		json.RawMessage(`{"productId":"SKU-2","price":299.0}`),
	}
	body := []byte(fmt.Sprintf(
		`{"source":"%s","records":[{"productId":"SKU-1","price":199.0},{"productId":"SKU-2","price":299.0}]}`,
		source,
	))

	tests := map[string]struct {
		senderError error
		wantErr     error
	}{
		"ok": {},
		"sender error": {
			senderError: assert.AnError,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sender := mocks.NewSender(t)
			sender.On("Send", mock.Anything, body).Return(tt.senderError)

			cmndr := commander.NewSaveCommander(sender)
			err := cmndr.SendSaveCommand(context.TODO(), source, records)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}
