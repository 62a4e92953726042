/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/allbin/soundcard"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <port>",
	Short: "Display detailed information about a serial port",
	Long: `Display detailed information about a serial port including USB metadata.

Examples:
  soundcard info /dev/ttyACM0
  soundcard info /dev/ttyUSB0

For USB devices this shows the vendor and product IDs, the serial number and
the product string reported by the device.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		info, err := soundcard.GetPortInfo(args[0])
		if err != nil {
			fail("getting port info: %v", err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Port Information: %s\n\n", info.Path)
		fmt.Fprintf(w, "  Name:        %s\n", info.Name)
		fmt.Fprintf(w, "  Description: %s\n", info.Description)

		if !info.IsUSB() {
			return
		}

		fmt.Fprintln(w, "\nUSB Device Information:")
		fmt.Fprintf(w, "  Vendor ID:    %s\n", info.VendorID)
		fmt.Fprintf(w, "  Product ID:   %s\n", info.ProductID)
		if info.SerialNumber != "" {
			fmt.Fprintf(w, "  Serial:       %s\n", info.SerialNumber)
		}
		if info.Product != "" {
			fmt.Fprintf(w, "  Product:      %s\n", info.Product)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
