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
	"testing"

	"github.com/stretchr/testify/assert"
)

// A texture which was drawn recently survives the maintenance pass, a stale
// one is released.
func TestWinImageTextureMaintenance(t *testing.T) {
	img := &WinImage{texture: &WinTexture{size: OsV2{4, 4}}}

	img.lastDrawTick = OsTicks()
	assert.True(t, img.Maintenance())
	assert.NotNil(t, img.texture)

	img.lastDrawTick = OsTicks() - 61000
	assert.False(t, img.Maintenance())
	assert.Nil(t, img.texture)
}
