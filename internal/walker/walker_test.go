package walker

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mghazyfawazh/outlines/internal/models"
)

type fakeCatalog struct {
	levels map[string][]models.Option
	doc    []byte
	asked  []string
}

func (f *fakeCatalog) Options(_ context.Context, path []string) ([]models.Option, error) {
	key := strings.Join(path, "/")
	f.asked = append(f.asked, key)
	opts, ok := f.levels[key]
	if !ok {
		return nil, errors.New("no listing for " + key)
	}
	return opts, nil
}

func (f *fakeCatalog) Raw(_ context.Context, path []string) ([]byte, error) {
	return f.doc, nil
}

func newFake() *fakeCatalog {
	return &fakeCatalog{
		levels: map[string][]models.Option{
			"":                   {{Text: "2024", Value: "2024"}},
			"2024":               {{Text: "SPRING", Value: "spring"}, {Text: "FALL", Value: "fall"}},
			"2024/fall":          {{Text: "CMPT", Value: "cmpt"}},
			"2024/fall/cmpt":     {{Text: "120", Value: "120"}},
			"2024/fall/cmpt/120": {{Text: "D100", Value: "d100"}},
		},
		doc: []byte(`{"info":{"name":"CMPT 120"}}`),
	}
}

func TestRun_WalksToSection(t *testing.T) {
	f := newFake()
	var out bytes.Buffer
	w := New(f, strings.NewReader("0\n1\n0\n0\n0\n"), &out)

	res, err := w.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, []string{"2024", "fall", "cmpt", "120", "d100"}, res.Path)
	assert.Contains(t, out.String(), "5: Requesting /2024/fall/cmpt/120/d100")
	assert.Contains(t, out.String(), "(1) FALL")
	assert.Contains(t, out.String(), "(q) quit")
	assert.Contains(t, out.String(), "{\n    \"info\": {\n        \"name\": \"CMPT 120\"")
}

func TestRun_InvalidThenRestart(t *testing.T) {
	f := newFake()
	var out bytes.Buffer
	w := New(f, strings.NewReader("0\n7\nr\n0\n1\n0\n0\n0\n"), &out)

	res, err := w.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Contains(t, out.String(), "Invalid choice entered")
	assert.Equal(t, []string{"", "2024", "", "2024", "2024/fall", "2024/fall/cmpt", "2024/fall/cmpt/120"}, f.asked)
}

func TestRun_QuitAndEOF(t *testing.T) {
	for _, input := range []string{"0\nq\n", "0\n"} {
		var out bytes.Buffer
		res, err := New(newFake(), strings.NewReader(input), &out).Run(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, res)
	}
}

func TestRun_CatalogError(t *testing.T) {
	f := newFake()
	delete(f.levels, "2024")
	var out bytes.Buffer
	_, err := New(f, strings.NewReader("0\n"), &out).Run(context.Background())
	assert.Error(t, err)
}

func TestRun_ClearScreen(t *testing.T) {
	var out bytes.Buffer
	w := New(newFake(), strings.NewReader("q\n"), &out)
	w.ClearScreen = true
	_, err := w.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "\033[H\033[2J"))
}
