package connstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasDuplicateParameters(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{
			name: "no query section",
			raw:  "mongodb://localhost:27017",
			want: false,
		},
		{
			name: "unique keys",
			raw:  "mongodb://localhost:27017/?ssl=true&appName=x",
			want: false,
		},
		{
			name: "same key same value is a duplicate",
			raw:  "mongodb://localhost:27017/?ssl=true&ssl=true",
			want: true,
		},
		{
			name: "same key different value is a conflict, not a duplicate",
			raw:  "mongodb://localhost:27017/?ssl=false&ssl=true",
			want: false,
		},
		{
			name: "key comparison is case-insensitive",
			raw:  "mongodb://localhost:27017/?ssl=true&SSL=true",
			want: true,
		},
		{
			name: "whitelisted key with repeated value is still a duplicate",
			raw:  "mongodb://localhost:27017/?readPreferenceTags=a&readPreferenceTags=a",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cs.HasDuplicateParameters())
		})
	}
}

func TestDeduplicateQueryParameters(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "whitelisted key keeps all distinct values in order",
			raw:  "mongodb://localhost:27017/?readPreferenceTags=a&readPreferenceTags=b",
			want: "mongodb://localhost:27017/?readPreferenceTags=a&readPreferenceTags=b",
		},
		{
			name: "whitelisted key drops only exact repeats",
			raw:  "mongodb://localhost:27017/?readPreferenceTags=a&readPreferenceTags=a&readPreferenceTags=b",
			want: "mongodb://localhost:27017/?readPreferenceTags=a&readPreferenceTags=b",
		},
		{
			name: "whitelisted key keeps significant empty value",
			raw:  "mongodb://localhost:27017/?readPreferenceTags=dc%3Aeast&readPreferenceTags=",
			want: "mongodb://localhost:27017/?readPreferenceTags=dc%3Aeast&readPreferenceTags=",
		},
		{
			name: "non-whitelisted key last value wins",
			raw:  "mongodb://localhost:27017/?appName=x&appName=y",
			want: "mongodb://localhost:27017/?appName=y",
		},
		{
			name: "exact duplicates collapse",
			raw:  "mongodb://localhost:27017/?ssl=true&ssl=true",
			want: "mongodb://localhost:27017/?ssl=true",
		},
		{
			name: "value conflict resolves to last",
			raw:  "mongodb://localhost:27017/?ssl=false&ssl=true",
			want: "mongodb://localhost:27017/?ssl=true",
		},
		{
			name: "distinct keys keep first-appearance order",
			raw:  "mongodb://localhost:27017/?b=1&a=1&b=2&c=1",
			want: "mongodb://localhost:27017/?b=2&a=1&c=1",
		},
		{
			name: "credentials hosts and database untouched",
			raw:  "mongodb://u:p@a:27017,b:27018/db?ssl=true&ssl=true",
			want: "mongodb://u:p@a:27017,b:27018/db?ssl=true",
		},
		{
			name: "no query section",
			raw:  "mongodb://localhost:27017",
			want: "mongodb://localhost:27017",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cs.DeduplicateQueryParameters())
		})
	}
}

func TestDeduplicateQueryParameters_FixedPointAfterOneApplication(t *testing.T) {
	raw := "mongodb://localhost:27017/?ssl=true&ssl=true&appName=x&appName=y&readPreferenceTags=a&readPreferenceTags=b&readPreferenceTags=a"

	cs, err := Parse(raw)
	require.NoError(t, err)
	first := cs.DeduplicateQueryParameters()

	current := first
	for i := 0; i < 3; i++ {
		parsed, err := Parse(current)
		require.NoError(t, err)
		current = parsed.DeduplicateQueryParameters()
		assert.Equal(t, first, current, "application %d must be a no-op", i+2)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "empty input returns empty",
			raw:  "",
			want: "",
		},
		{
			name: "not a connection string returns input unchanged",
			raw:  "definitely not a uri",
			want: "definitely not a uri",
		},
		{
			name: "wrong scheme returns input unchanged",
			raw:  "postgres://localhost:5432/db",
			want: "postgres://localhost:5432/db",
		},
		{
			name: "valid string gets deduplicated",
			raw:  "mongodb://localhost:27017/?appName=x&appName=y",
			want: "mongodb://localhost:27017/?appName=y",
		},
		{
			name: "query values get encoded",
			raw:  "mongodb://localhost:27017/?appName=@app@",
			want: "mongodb://localhost:27017/?appName=%40app%40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"mongodb://localhost:27017",
		"mongodb://u:p@a:27017,b:27018/db?ssl=true&ssl=true",
		"mongodb://localhost:27017/?appName=@app@&appName=@app@",
		"mongodb+srv://cluster0.example.net/?readPreferenceTags=a&readPreferenceTags=b",
		"not a uri at all",
		"",
	}

	for _, raw := range inputs {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", raw)
	}
}
