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

package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKind(t *testing.T) {
	tests := []struct {
		path  string
		isUrl bool
		kind  Kind
	}{
		{"photo.jpg", false, Kind_Image},
		{"photo.JPG", false, Kind_Image},
		{"scan.tiff", false, Kind_Image},
		{"anim.webp", false, Kind_Image},
		{"clip.mp4", false, Kind_Video},
		{"clip.MKV", false, Kind_Video},
		{"clip.webm", false, Kind_Video},
		{"https://example.com/a/b.png", true, Kind_Image},
		{"http://example.com/v.mp4?q=1", true, Kind_Video},
		{"noextension", false, Kind_Image}, //unknown = try image
	}

	for _, tt := range tests {
		isUrl, kind := GetKind(tt.path)
		assert.Equal(t, tt.isUrl, isUrl, tt.path)
		assert.Equal(t, tt.kind, kind, tt.path)
	}
}

func TestIsUrl(t *testing.T) {
	assert.True(t, IsUrl("https://example.com/x.png"))
	assert.True(t, IsUrl("  HTTP://example.com/x.png"))
	assert.False(t, IsUrl("/home/user/x.png"))
	assert.False(t, IsUrl("ftp://example.com/x.png"))
}

func TestGetFileExtensionFromUrl(t *testing.T) {
	ext, err := getFileExtensionFromUrl("https://example.com/dir/file.png?v=2")
	assert.NoError(t, err)
	assert.Equal(t, "png", ext)

	_, err = getFileExtensionFromUrl("https://example.com/noext")
	assert.Error(t, err)
}
