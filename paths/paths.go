// This file is part of g2aica.
//
// g2aica is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// g2aica is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with g2aica.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths for g2aica resources.
//
// The ResourcePath() function returns the path to a resource directory or
// file, with the base resource path prepended. If a ".g2aica" directory
// exists in the current working directory then that is used as the base,
// otherwise the user's configuration directory is used.
package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".g2aica"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base path. The path is not created and the
// existence of the resource is not checked.
func ResourcePath(path string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, path, file), nil
}

func getBasePath() (string, error) {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath, nil
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	// no leading dot when placed in the user's config directory
	return filepath.Join(home, baseResourcePath[1:]), nil
}
