// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/albumrc/pkg/config"
)

func ExampleLoad_json() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "albumrc-example")
	if err != nil {
		fmt.Printf("Error creating dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	albumJSON := `{
		"name": "Holiday",
		"base": "/photos/holiday",
		"transformations": {
			"bw": ["Normalize", {"Unsharp": {"radius": 2}}]
		},
		"images": [
			{"filename": "beach.jpg"},
			{"filename": "sunset.jpg", "transformations": "bw"}
		]
	}`

	path := filepath.Join(dir, "album.json")
	if err := os.WriteFile(path, []byte(albumJSON), 0644); err != nil {
		fmt.Printf("Error writing album: %v\n", err)
		return
	}

	a, err := config.Load(ctx, path)
	if err != nil {
		fmt.Printf("Error loading album: %v\n", err)
		return
	}

	fmt.Printf("Loaded %q with %d images and %d sets\n", a.Name, len(a.Images), len(a.Transformations))
	fmt.Printf("Second image uses %q: %s\n", a.Images[1].SetName(), a.Transformations["bw"])

	// Output:
	// Loaded "Holiday" with 2 images and 1 sets
	// Second image uses "bw": normalize, unsharp 2
}

func ExampleLoad_yaml() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "albumrc-example")
	if err != nil {
		fmt.Printf("Error creating dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	albumYAML := `
base: /photos/holiday
images:
  - beach.jpg
  - pier.jpg
`

	path := filepath.Join(dir, "album.yaml")
	if err := os.WriteFile(path, []byte(albumYAML), 0644); err != nil {
		fmt.Printf("Error writing album: %v\n", err)
		return
	}

	a, err := config.Load(ctx, path)
	if err != nil {
		fmt.Printf("Error loading album: %v\n", err)
		return
	}

	fmt.Printf("Loaded %q with %d images\n", a.Name, len(a.Images))
	fmt.Printf("First image uses %q\n", a.Images[0].SetName())

	// Output:
	// Loaded "holiday" with 2 images
	// First image uses "default"
}
