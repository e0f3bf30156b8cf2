package listsplit

import (
	"errors"
	"sync"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitOneOf(t *testing.T) {
	parts, err := SplitStringOneOf(",.", "ab,cd.ef")
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "cd", "ef"}, parts)
	//
	parts, err = SplitStringOneOf("<>", "ab<>cd<>ef")
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "cd", "ef"}, parts)
	//
	parts, err = SplitStringOneOf("", "abc")
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, parts)
}

func TestSplitOn(t *testing.T) {
	parts, err := SplitStringOn("<>", "ab<>cd<>ef")
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "cd", "ef"}, parts)
	//
	parts, err = SplitStringOn("::", "::ab::")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "ab", ""}, parts)
	//
	_, err = SplitStringOn("", "abc")
	assert.True(t, errors.Is(err, ErrInvalidPredicates))
}

func TestSplitWhen(t *testing.T) {
	sp := ForSlices[int]()
	parts, err := sp.SplitWhen(func(x int) bool { return x%3 == 0 }, []int{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {4, 5}, {7, 8}}, parts)
	//
	words, err := SplitStringWhen(unicode.IsSpace, "to  be or")
	require.NoError(t, err)
	assert.Equal(t, []string{"to", "be", "or"}, words)
}

func TestSplitGenericSlices(t *testing.T) {
	sp := ForSlices[string]()
	parts, err := sp.SplitOn([]string{"--"}, []string{"echo", "a", "--", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"echo", "a"}, {"b", "c"}}, parts)
	//
	parts, err = sp.SplitOneOf([]string{"+", "-"}, []string{"x", "y", "+", "z", "w"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x", "y"}, {"z", "w"}}, parts)
}

func TestSplitPartialApplication(t *testing.T) {
	sp := ForRunes()
	onCommas := sp.SplitOneOfFunc([]rune(","))
	for _, input := range []string{"ab,cd", "xy,zz,ww"} {
		parts, err := onCommas([]rune(input))
		require.NoError(t, err)
		all, err := SplitStringOneOf(",", input)
		require.NoError(t, err)
		require.Equal(t, len(all), len(parts))
		for i := range parts {
			assert.Equal(t, all[i], string(parts[i]))
		}
	}
	onArrow := sp.SplitOnFunc([]rune("->"))
	parts, err := onArrow([]rune("ab->cd"))
	require.NoError(t, err)
	assert.Equal(t, [][]rune{[]rune("ab"), []rune("cd")}, parts)
	//
	onSpace := sp.SplitWhenFunc(unicode.IsSpace)
	parts, err = onSpace([]rune("ab cd"))
	require.NoError(t, err)
	assert.Equal(t, [][]rune{[]rune("ab"), []rune("cd")}, parts)
	//
	keepAll := sp.SplitFuncFor(nil, sp.OneOf([]rune(";")))
	parts, err = keepAll([]rune("ab;cd"))
	require.NoError(t, err)
	assert.Equal(t, [][]rune{[]rune("ab"), []rune(";"), []rune("cd")}, parts)
}

func TestSplitWithTransforms(t *testing.T) {
	sp := ForRunes()
	post := Compose[[]rune](sp.MergeDelimsLeft, sp.DropFinalBlank)
	parts, err := sp.Split(post, sp.OneOf([]rune(".")), []rune("One. Two. Three."))
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, "One.", string(parts[0]))
	assert.Equal(t, " Two.", string(parts[1]))
	assert.Equal(t, " Three.", string(parts[2]))
}

func TestSplitConcurrently(t *testing.T) {
	sp := ForRunes()
	split := sp.SplitOneOfFunc([]rune(",;"))
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				parts, err := split([]rune("ab,cd;ef"))
				if err != nil {
					errs <- err
					return
				}
				if len(parts) != 3 || string(parts[2]) != "ef" {
					errs <- errors.New("unexpected split result")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
