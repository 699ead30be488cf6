package fs

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hmm/pkg/core"
)

func TestCSVSerializer_Parse(t *testing.T) {
	s := NewCSVSerializer()

	tests := []struct {
		name string
		in   string
		want []core.Thought
	}{
		{
			name: "Empty Input",
			in:   "",
			want: []core.Thought{},
		},
		{
			name: "Header Only",
			in:   "id,timestamp,message,tags\n",
			want: []core.Thought{},
		},
		{
			name: "Header And Rows",
			in:   "id,timestamp,message,tags\n1,2018-01-01 00:00:00,hello world,tag1\n",
			want: []core.Thought{{ID: 1, Timestamp: "2018-01-01 00:00:00", Message: "hello world", Tags: "tag1"}},
		},
		{
			name: "No Header",
			in:   "3,2024-01-01,first,\n1,2024-01-02,second,x\n",
			want: []core.Thought{
				{ID: 3, Timestamp: "2024-01-01", Message: "first"},
				{ID: 1, Timestamp: "2024-01-02", Message: "second", Tags: "x"},
			},
		},
		{
			name: "Missing Tags Column",
			in:   "1,2024-01-01,no tags here\n",
			want: []core.Thought{{ID: 1, Timestamp: "2024-01-01", Message: "no tags here"}},
		},
		{
			name: "Blank Lines Are Skipped",
			in:   "id,timestamp,message,tags\n\n1,2024-01-01,a,b\n\n\n2,2024-01-01,c,d\n",
			want: []core.Thought{
				{ID: 1, Timestamp: "2024-01-01", Message: "a", Tags: "b"},
				{ID: 2, Timestamp: "2024-01-01", Message: "c", Tags: "d"},
			},
		},
		{
			name: "Quoted Fields",
			in:   "1,2024-01-01,\"milk, eggs\",\"say \"\"hi\"\"\"\n",
			want: []core.Thought{{ID: 1, Timestamp: "2024-01-01", Message: "milk, eggs", Tags: `say "hi"`}},
		},
		{
			name: "Bare Quote In Unquoted Field",
			in:   "id,timestamp,message,tags\n1,2024-01-01,6\" sub for lunch,food\n",
			want: []core.Thought{{ID: 1, Timestamp: "2024-01-01", Message: `6" sub for lunch`, Tags: "food"}},
		},
		{
			name: "CRLF Line Endings",
			in:   "id,timestamp,message,tags\r\n1,2024-01-01,a,b\r\n",
			want: []core.Thought{{ID: 1, Timestamp: "2024-01-01", Message: "a", Tags: "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Parse(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCSVSerializer_ParseErrors(t *testing.T) {
	s := NewCSVSerializer()

	tests := []struct {
		name     string
		in       string
		wantLine int
	}{
		{"Too Few Fields", "id,timestamp,message,tags\n1,2024-01-01,ok,\n2,2024-01-01\n", 3},
		{"Non Integer Id", "x,2024-01-01,msg,tags\n", 1},
		{"Negative Id", "-1,2024-01-01,msg,tags\n", 1},
		{"Zero Id", "0,2024-01-01,msg,tags\n", 1},
		{"Too Many Fields", "1,2024-01-01,milk,eggs,bread\n", 1},
		{"Header Not On First Line", "1,2024-01-01,a,b\nid,timestamp,message,tags\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Parse(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, core.ErrParse), "expected ErrParse, got %v", err)

			var pe *core.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.wantLine, pe.Line)
		})
	}
}

func TestCSVSerializer_Serialize(t *testing.T) {
	s := NewCSVSerializer()

	t.Run("Writes Header First", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Serialize(&buf, nil))
		assert.Equal(t, "id,timestamp,message,tags\n", buf.String())
	})

	t.Run("One Line Per Thought In Order", func(t *testing.T) {
		var buf bytes.Buffer
		err := s.Serialize(&buf, []core.Thought{
			{ID: 2, Timestamp: "2024-01-02", Message: "second", Tags: ""},
			{ID: 1, Timestamp: "2024-01-01", Message: "first", Tags: "work"},
		})
		require.NoError(t, err)
		assert.Equal(t, "id,timestamp,message,tags\n2,2024-01-02,second,\n1,2024-01-01,first,work\n", buf.String())
	})

	t.Run("Quotes Delimiters", func(t *testing.T) {
		in := []core.Thought{{ID: 1, Timestamp: "2024-01-01", Message: "milk, eggs\nand bread", Tags: `"quoted"`}}
		var buf bytes.Buffer
		require.NoError(t, s.Serialize(&buf, in))

		got, err := s.Parse(&buf)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})
}
