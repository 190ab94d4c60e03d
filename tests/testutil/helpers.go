// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// wingetStubScript mimics the handful of winget subcommands the tool
// drives. WINGET_STUB_INSTALLED and WINGET_STUB_UPGRADABLE hold
// comma-separated package ids; WINGET_STUB_FAIL_INSTALL makes install
// and upgrade exit non-zero.
const wingetStubScript = `#!/bin/sh
case "$1" in
--version)
  echo "v1.9.25200"
  ;;
source)
  exit 0
  ;;
list)
  id="$3"
  case ",$WINGET_STUB_INSTALLED," in
  *",$id,"*)
    echo "Stub App $id 1.0.0 winget"
    exit 0
    ;;
  esac
  exit 1
  ;;
upgrade)
  if [ "$2" = "--id" ]; then
    if [ -n "$WINGET_STUB_FAIL_INSTALL" ]; then
      exit 1
    fi
    exit 0
  fi
  if [ -n "$WINGET_STUB_UPGRADABLE" ]; then
    echo "Name Id Version Available Source"
    for id in $(echo "$WINGET_STUB_UPGRADABLE" | tr ',' ' '); do
      echo "Stub App $id 1.0.0 2.0.0 winget"
    done
    exit 0
  fi
  exit 1
  ;;
install)
  if [ -n "$WINGET_STUB_FAIL_INSTALL" ]; then
    exit 1
  fi
  exit 0
  ;;
*)
  exit 2
  ;;
esac
`

// WriteWingetStub writes an executable stub standing in for winget and
// returns its path. Tests on Windows are skipped; the stub needs a
// POSIX shell.
func WriteWingetStub(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub script requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "winget")
	require.NoError(t, os.WriteFile(path, []byte(wingetStubScript), 0o755))
	return path
}
