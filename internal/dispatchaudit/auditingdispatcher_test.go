package dispatchaudit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/sdp/pkg/message"
	"github.com/marmos91/sdp/pkg/record"
	"github.com/marmos91/sdp/pkg/records"
)

func TestAuditingDispatcherRecordsSuccess(t *testing.T) {
	store := openTestStore(t)

	d := message.NewDispatcher()
	d.Register(1, func() record.Decoder { return &records.Primitives{} })
	audited := NewAuditingDispatcher(d, store)

	rec := records.Primitives{U32: 9}
	payload := make([]byte, rec.EncodedSize())
	_, err := rec.EncodeToSlice(payload)
	require.NoError(t, err)

	buf := make([]byte, 8+len(payload))
	_, err = message.EncodeEnvelope(buf, 1, payload)
	require.NoError(t, err)

	_, err = audited.Dispatch(buf)
	require.NoError(t, err)

	var events []DispatchEvent
	require.NoError(t, store.db.Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, uint32(1), events[0].TypeTag)
	assert.Equal(t, outcomeOK, events[0].Outcome)
}

func TestAuditingDispatcherRecordsFailureOnUnknownTag(t *testing.T) {
	store := openTestStore(t)
	d := message.NewDispatcher()
	audited := NewAuditingDispatcher(d, store)

	buf := make([]byte, 8)
	_, err := message.EncodeEnvelope(buf, 999, nil)
	require.NoError(t, err)

	_, err = audited.Dispatch(buf)
	require.Error(t, err)

	var events []DispatchEvent
	require.NoError(t, store.db.Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, outcomeFailure, events[0].Outcome)
}
