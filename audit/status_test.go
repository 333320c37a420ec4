package audit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func u32ptr(v uint32) *uint32 {
	return &v
}

func fullStatus() StatusMessage {
	return StatusMessage{
		Mask:                  0x0001,
		Enabled:               1,
		Failure:               1,
		PID:                   4321,
		RateLimiting:          500,
		BacklogLimit:          8192,
		Lost:                  7,
		Backlog:               13,
		FeatureBitmap:         u32ptr(0x7f),
		BacklogWaitTime:       u32ptr(60000),
		BacklogWaitTimeActual: u32ptr(1234),
	}
}

func TestStatusRoundTrip(t *testing.T) {
	want := fullStatus()

	data := want.Serialize()
	if len(data) != StatusMessageMaxLen {
		t.Fatalf("serialized status is %d bytes, want %d", len(data), StatusMessageMaxLen)
	}

	var got StatusMessage
	if err := got.Deserialize(data); err != nil {
		t.Fatalf("deserialize failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("status message changed across round trip (-want +got):\n%s", diff)
	}
}

// Older kernels emit shorter status structs. Every prefix that covers the
// mandatory fields must decode, with the missing trailing fields absent
// rather than zero.
func TestStatusVersionSkew(t *testing.T) {
	full := fullStatus()
	data := full.Serialize()

	cases := []struct {
		length  int
		feature *uint32
		wait    *uint32
		actual  *uint32
	}{
		{32, nil, nil, nil},
		{36, u32ptr(0x7f), nil, nil},
		{40, u32ptr(0x7f), u32ptr(60000), nil},
		{44, u32ptr(0x7f), u32ptr(60000), u32ptr(1234)},
	}

	for _, c := range cases {
		var got StatusMessage
		if err := got.Deserialize(data[:c.length]); err != nil {
			t.Fatalf("deserialize of %d byte status failed: %v", c.length, err)
		}
		want := full
		want.FeatureBitmap = c.feature
		want.BacklogWaitTime = c.wait
		want.BacklogWaitTimeActual = c.actual
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("status truncated to %d bytes (-want +got):\n%s", c.length, diff)
		}
	}
}

func TestStatusTooShort(t *testing.T) {
	var got StatusMessage
	err := got.Deserialize(make([]byte, StatusMessageMinLen-1))
	require.Error(t, err)

	var tooShort *TooShortError
	require.True(t, errors.As(err, &tooShort))
	require.Equal(t, StatusMessageMinLen-1, tooShort.Len)
	require.Equal(t, StatusMessageMinLen, tooShort.Min)
}

func TestStatusAbsentFieldsZeroFilled(t *testing.T) {
	m := StatusMessage{Mask: 1, PID: 99}
	data := m.Serialize()

	for i := StatusMessageMinLen; i < StatusMessageMaxLen; i++ {
		if data[i] != 0 {
			t.Fatalf("byte %d of absent optional region is %#x, want 0", i, data[i])
		}
	}
}

func TestStatusSerializeLegacy(t *testing.T) {
	m := fullStatus()
	data := m.SerializeLegacy()
	if len(data) != StatusMessageMinLen {
		t.Fatalf("legacy status is %d bytes, want %d", len(data), StatusMessageMinLen)
	}

	var got StatusMessage
	require.NoError(t, got.Deserialize(data))
	require.Equal(t, m.PID, got.PID)
	require.Equal(t, m.BacklogLimit, got.BacklogLimit)
	require.Nil(t, got.FeatureBitmap)
}

// Decoding longer buffers than the known layout must not fail, newer
// kernels may keep appending fields.
func TestStatusTrailingBytesIgnored(t *testing.T) {
	want := fullStatus()
	data := append(want.Serialize(), 0xde, 0xad, 0xbe, 0xef)

	var got StatusMessage
	require.NoError(t, got.Deserialize(data))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("status with trailing bytes (-want +got):\n%s", diff)
	}
}

func TestStatusDeserializeDoesNotClobberOnError(t *testing.T) {
	got := fullStatus()
	want := fullStatus()

	require.Error(t, got.Deserialize([]byte{1, 2, 3}))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("receiver mutated by failed deserialize (-want +got):\n%s", diff)
	}
}
