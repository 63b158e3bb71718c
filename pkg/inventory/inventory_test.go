package inventory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `3-5
10-14
16-20
12-18

1
5
8
11
17
32
`

func TestParse(t *testing.T) {
	cases := map[string]struct {
		input         string
		expectedFresh int
		expectedTotal uint64
		expectedIDs   int
		expectedErr   string
	}{
		"Example": {
			input:         example,
			expectedFresh: 3,
			expectedTotal: 14,
			expectedIDs:   6,
		},
		"Padded": {
			input:         "\n\n  3-5 \n\n 4\n9\n\n",
			expectedFresh: 1,
			expectedTotal: 3,
			expectedIDs:   2,
		},
		"RangesOnly": {
			input:         "1-10\n",
			expectedTotal: 10,
		},
		"Empty": {
			input: "",
		},
		"BadLines": {
			input:         "1-10\nfoo\n\n5\nbar\n",
			expectedFresh: 1,
			expectedTotal: 10,
			expectedIDs:   1,
			expectedErr:   "line 2",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			inv, err := Parse(strings.NewReader(tc.input))
			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr)
				assert.Contains(t, err.Error(), "line 5")
			} else {
				assert.NoError(t, err)
			}
			require.NotNil(t, inv)
			assert.Equal(t, tc.expectedIDs, len(inv.IDs))
			assert.Equal(t, tc.expectedFresh, inv.CountFresh())
			assert.Equal(t, tc.expectedTotal, inv.TotalFresh())
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(example), 0o644))

	inv, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, inv.CountFresh())

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
