package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"github.com/vokinneberg/sqlchart/internal/types"
)

func TestRedis_Get(t *testing.T) {
	entry := &types.CacheEntry{
		SQLQuery:  "SELECT COUNT(*) FROM users;",
		Result:    "[(42)]",
		ChartCode: "plt.plot([42])",
	}
	encoded, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal entry: %v", err)
	}

	tests := []struct {
		name      string
		setupMock func(redismock.ClientMock)
		wantEntry *types.CacheEntry
		wantErr   bool
	}{
		{
			name: "hit returns decoded entry",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("SELECT COUNT(*) FROM users;").SetVal(string(encoded))
			},
			wantEntry: entry,
		},
		{
			name: "missing key is absent, not an error",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("SELECT COUNT(*) FROM users;").RedisNil()
			},
		},
		{
			name: "corrupt entry is absent, not an error",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("SELECT COUNT(*) FROM users;").SetVal("{not json")
			},
		},
		{
			name: "server error surfaces",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectGet("SELECT COUNT(*) FROM users;").SetErr(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			tt.setupMock(mock)

			gateway := NewWithClient(client, 0)
			got, err := gateway.Get(context.Background(), "SELECT COUNT(*) FROM users;")

			if (err != nil) != tt.wantErr {
				t.Fatalf("Get() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantEntry == nil {
				if got != nil {
					t.Errorf("Get() = %+v, want nil", got)
				}
			} else if got == nil || *got != *tt.wantEntry {
				t.Errorf("Get() = %+v, want %+v", got, tt.wantEntry)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestRedis_Set(t *testing.T) {
	entry := &types.CacheEntry{
		SQLQuery:  "SELECT name FROM users;",
		Result:    "[(Alice)]",
		ChartCode: "new Chart(ctx, {});",
	}
	encoded, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal entry: %v", err)
	}

	t.Run("explicit ttl", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectSet("SELECT name FROM users;", encoded, 10*time.Minute).SetVal("OK")

		gateway := NewWithClient(client, 0)
		if err := gateway.Set(context.Background(), "SELECT name FROM users;", entry, 10*time.Minute); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("zero ttl uses default expiry", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectSet("SELECT name FROM users;", encoded, DefaultTTL).SetVal("OK")

		gateway := NewWithClient(client, 0)
		if err := gateway.Set(context.Background(), "SELECT name FROM users;", entry, 0); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("server error surfaces", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectSet("SELECT name FROM users;", encoded, DefaultTTL).SetErr(errors.New("read only replica"))

		gateway := NewWithClient(client, 0)
		if err := gateway.Set(context.Background(), "SELECT name FROM users;", entry, 0); err == nil {
			t.Fatal("Set() expected error, got nil")
		}
	})
}
