package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/neoncube/internal/smartcube"
)

var scanTimeout time.Duration

var smartcubeCmd = &cobra.Command{
	Use:   "smartcube",
	Short: "Play with a GoCube smart cube",
	Long: `Connect to a GoCube over Bluetooth and play with it. Physical face turns
drive the outer layers of the game cube, whatever its size; the keyboard
works as in 'neoncube play'.

The last connected cube is preferred when several are found.`,
	RunE: runSmartcube,
}

var smartcubeScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List nearby GoCube devices",
	RunE:  runSmartcubeScan,
}

var smartcubeRawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Print decoded notifications from a GoCube",
	Long: `Connect to a GoCube and print every notification it sends, with rotations
shown as the 3x3 layer moves they map to. Press Ctrl+C to exit.`,
	RunE: runSmartcubeRaw,
}

func init() {
	rootCmd.AddCommand(smartcubeCmd)
	addGameFlags(smartcubeCmd)
	smartcubeCmd.PersistentFlags().DurationVar(&scanTimeout, "timeout", 5*time.Second, "How long to scan for devices")

	smartcubeCmd.AddCommand(smartcubeScanCmd)
	smartcubeCmd.AddCommand(smartcubeRawCmd)
}

// scanForGoCube performs a single scan, which is enough for discovery on
// every platform tried so far.
func scanForGoCube() (*smartcube.Client, []smartcube.ScanResult, error) {
	fmt.Println("Scanning for GoCube devices...")

	client, err := smartcube.NewClient()
	if err != nil {
		return nil, nil, fmt.Errorf("BLE not available: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	results, err := client.Scan(ctx, scanTimeout)
	if err != nil {
		return client, nil, err
	}
	return client, results, nil
}

func printNoDevices() {
	fmt.Println("No GoCube devices found.")
	fmt.Println()
	fmt.Println("To fix this:")
	fmt.Println("  1. Rotate your cube to wake it up")
	fmt.Println("  2. Make sure it's not connected to your phone")
	fmt.Println("  3. Run this command again")
}

func runSmartcubeScan(cmd *cobra.Command, args []string) error {
	_, results, err := scanForGoCube()
	if err != nil {
		return err
	}
	if len(results) == 0 {
		printNoDevices()
		return nil
	}

	fmt.Printf("Found %d device(s):\n", len(results))
	for _, r := range results {
		fmt.Printf("  - %s (UUID: %s, RSSI: %d)\n", r.Name, r.UUID, r.RSSI)
	}
	return nil
}

func runSmartcube(cmd *cobra.Command, args []string) error {
	client, results, err := scanForGoCube()
	if err != nil {
		return err
	}
	if len(results) == 0 {
		printNoDevices()
		return nil
	}

	a, err := newArcade()
	if err != nil {
		return err
	}
	defer a.Close()

	prefs := a.settings.Preferences()
	target := results[0]
	for _, r := range results {
		if r.UUID == prefs.LastDeviceID {
			target = r
			break
		}
	}

	bridge := smartcube.NewBridge(a.session, a.logger)
	client.SetMessageCallback(bridge.HandleMessage)

	fmt.Printf("Connecting to %s...\n", target.Name)
	if err := client.Connect(context.Background(), target); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer client.Disconnect()

	if err := a.settings.SetLastDevice(client.DeviceUUID(), client.DeviceName()); err != nil {
		a.logger.WithError(err).Warn("failed to save settings")
	}
	if err := client.FlashBacklight(); err != nil {
		a.logger.WithError(err).Debug("backlight flash failed")
	}

	model := newPlayModel(a)
	model.bridge = bridge
	model.device = client.DeviceName()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func runSmartcubeRaw(cmd *cobra.Command, args []string) error {
	client, results, err := scanForGoCube()
	if err != nil {
		return err
	}
	if len(results) == 0 {
		printNoDevices()
		return nil
	}

	client.SetMessageCallback(func(msg *smartcube.Message) {
		fmt.Printf("[%s] %s\n", smartcube.MessageTypeName(msg.Type), hex.EncodeToString(msg.Payload))
		switch msg.Type {
		case smartcube.MsgTypeRotation:
			rotations, err := smartcube.DecodeRotation(msg.Payload)
			if err != nil {
				fmt.Printf("      %v\n", err)
				return
			}
			for _, rot := range rotations {
				fmt.Printf("      %s clockwise=%v -> %s\n", rot.Color, rot.Clockwise, rot.Move(3).Notation())
			}
		case smartcube.MsgTypeBattery:
			if level, err := smartcube.DecodeBattery(msg.Payload); err == nil {
				fmt.Printf("      battery %d%%\n", level)
			}
		case smartcube.MsgTypeCubeType:
			if name, err := smartcube.DecodeCubeType(msg.Payload); err == nil {
				fmt.Printf("      cube type %s\n", name)
			}
		case smartcube.MsgTypeOfflineStats:
			if st, err := smartcube.DecodeOfflineStats(msg.Payload); err == nil {
				fmt.Printf("      offline: %d moves, %ds, %d solves\n", st.Moves, st.Seconds, st.Solves)
			}
		}
	})

	target := results[0]
	fmt.Printf("Connecting to %s (%s)...\n", target.Name, target.UUID)
	if err := client.Connect(context.Background(), target); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer client.Disconnect()

	fmt.Println("Rotate the cube to see data...")
	fmt.Println("Press Ctrl+C to exit")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\nDisconnecting...")
	return nil
}
