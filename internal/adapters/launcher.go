package adapters

import (
	"os/exec"
	"runtime"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"wingetup/internal/ports"
)

// BrowserLauncher opens URLs with the platform's default handler. The
// child process is not waited on; the browser outlives the run.
type BrowserLauncher struct{}

func NewBrowserLauncher() BrowserLauncher {
	return BrowserLauncher{}
}

func (BrowserLauncher) OpenURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open browser").
			WithCause(err)
	}
	return nil
}

var _ ports.LauncherPort = BrowserLauncher{}
