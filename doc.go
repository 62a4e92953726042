// Package soundcard is the serial side of a control console for an SGTL5000
// based sound card. The board speaks a plain text protocol: one command per
// line, terminated by CR LF, and it answers with newline-terminated lines
// whose content is opaque to this package.
//
// # Basic Usage
//
// Open a transport, send encoded commands, and poll for responses:
//
//	t, err := soundcard.NewTransport()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := t.Open("/dev/ttyACM0", 9600, "\r\n"); err != nil {
//	    log.Fatal(err)
//	}
//	defer t.Close()
//
//	t.WriteLine(codec.SetVolume(60))
//
//	for range time.Tick(100 * time.Millisecond) {
//	    for _, line := range t.DrainLines() {
//	        fmt.Print(line)
//	    }
//	}
//
// # Configuration Options
//
// Use functional options for custom configuration:
//
//	t, err := soundcard.NewTransport(
//	    soundcard.WithReadTimeout(200*time.Millisecond),
//	    soundcard.WithCloseTimeout(time.Second),
//	    soundcard.WithCharset("latin1"),
//	    soundcard.WithDriver(soundcard.DriverBugst),
//	    soundcard.WithLogger(entry),
//	)
//
// # Failure Model
//
// Only Open returns errors, and they all match ErrOpenFailed:
//
//	if errors.Is(err, soundcard.ErrOpenFailed) {
//	    // errors.Is(err, soundcard.ErrDeviceInUse) etc. tell why
//	}
//
// A read error ends the session without surfacing anywhere except IsOpen,
// which then reports false. WriteLine on a closed transport does nothing.
// Characters the wire charset cannot carry are dropped in both directions.
//
// # Port Discovery
//
//	ports, err := soundcard.ListPorts()
//	for _, portPath := range ports {
//	    info, _ := soundcard.GetPortInfo(portPath)
//	    fmt.Printf("%s: %s (VID=%s PID=%s)\n", info.Path, info.Description, info.VendorID, info.ProductID)
//	}
//
// # Default Configuration
//
//   - ReadTimeout: 100ms
//   - CloseTimeout: 500ms
//   - ReadSize: 256 bytes
//   - Charset: utf-8
//   - Driver: native termios, 8N1
//   - WriteMode: Buffered
package soundcard
