package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Report elevation, winget availability, and host facts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd)
		},
	}
}

func runDoctor(cmd *cobra.Command) error {
	service := newAppService(false)
	result, err := service.Doctor(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("elevated: %t\n", result.Elevated)
	if result.WingetPresent {
		fmt.Printf("winget: %s\n", result.WingetVersion)
	} else {
		fmt.Println("winget: not found")
	}
	if result.HostKnown {
		fmt.Printf("host: %s (%s, %s)\n", result.Host.Hostname, result.Host.OS, result.Host.Platform)
		fmt.Printf("kernel: %s\n", result.Host.Version)
		fmt.Printf("uptime: %s\n", result.Host.Uptime)
	}
	return nil
}
