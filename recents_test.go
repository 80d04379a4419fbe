/*
Copyright 2025 Milan Suk

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this db except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentsLast(t *testing.T) {
	rc, err := NewRecents(filepath.Join(t.TempDir(), "recents.sqlite"))
	require.NoError(t, err)
	defer rc.Destroy()

	//empty store
	left, right := rc.Last()
	assert.Equal(t, "", left)
	assert.Equal(t, "", right)

	require.NoError(t, rc.Add("a.png", "b.png"))
	require.NoError(t, rc.Add("c.mp4", "d.mp4"))

	left, right = rc.Last()
	assert.Equal(t, "c.mp4", left)
	assert.Equal(t, "d.mp4", right)

	//re-adding a known pair refreshes it instead of duplicating
	require.NoError(t, rc.Add("a.png", "b.png"))
	left, right = rc.Last()
	assert.Equal(t, "a.png", left)
	assert.Equal(t, "b.png", right)
}

func TestRecentsKeepsOnlyNewest(t *testing.T) {
	rc, err := NewRecents(filepath.Join(t.TempDir(), "recents.sqlite"))
	require.NoError(t, err)
	defer rc.Destroy()

	for i := 0; i < 25; i++ {
		require.NoError(t, rc.Add(fmt.Sprintf("l%d.png", i), fmt.Sprintf("r%d.png", i)))
	}

	var n int
	require.NoError(t, rc.db.QueryRow("SELECT COUNT(*) FROM recents;").Scan(&n))
	assert.Equal(t, 20, n)

	left, right := rc.Last()
	assert.Equal(t, "l24.png", left)
	assert.Equal(t, "r24.png", right)
}
