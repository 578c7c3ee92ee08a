package token

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParse(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	signed, claims, err := j.Generate(ctx, 42)
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.Equal(t, int64(42), claims.UserID)
	assert.NotEmpty(t, claims.SessionID)

	parsed, err := j.Parse(ctx, signed)
	assert.NoError(t, err)
	assert.Equal(t, claims, parsed)
}

func TestGenerate_FreshSessionID(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	_, first, err := j.Generate(ctx, 1)
	assert.NoError(t, err)
	_, second, err := j.Generate(ctx, 1)
	assert.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestParse_WrongSecret(t *testing.T) {
	ctx := context.Background()

	signed, _, err := j(t, "secret-a").Generate(ctx, 7)
	assert.NoError(t, err)

	_, err = j(t, "secret-b").Parse(ctx, signed)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	ctx := context.Background()
	jwt := New("test-secret", -time.Minute)

	signed, _, err := jwt.Generate(ctx, 7)
	assert.NoError(t, err)

	_, err = jwt.Parse(ctx, signed)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, err := New("test-secret", time.Minute).Parse(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestGetTokenFromRequest(t *testing.T) {
	jwt := New("test-secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "no token part", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			got, err := jwt.GetTokenFromRequest(ctx, r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func j(t *testing.T, secret string) *JWT {
	t.Helper()
	return New(secret, time.Minute)
}
