package context

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header http.Header
		want   string
	}{
		{name: "explicit request id wins", header: http.Header{HeaderXRequestID: {"req-1"}, HeaderCloudTrace: {"abc/1;o=1"}}, want: "req-1"},
		{name: "cloud trace id", header: http.Header{HeaderCloudTrace: {"105445aa7843bc8bf206b12000100000/1;o=1"}}, want: "105445aa7843bc8bf206b12000100000"},
		{name: "nothing", header: http.Header{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequestIDFromHeader(tt.header))
		})
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-7")

	assert.Equal(t, "req-7", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Nil(t, GetLogger(ctx))
}
