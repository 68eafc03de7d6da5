package commands

// Message constants
const (
	MsgRootShort = "Styled text output for ESC/POS receipt printers"
	MsgRootLong  = `pos-writer formats text for thermal receipt printers: it applies
text attributes (bold, underline, size, justification and friends),
wraps paragraphs to the paper's column budget, and can draw a box
around the result before sending ESC/POS bytes to the device.

Output goes to the configured device path, or to stdout with "-" so
it can be piped (e.g. to netcat for a network printer).`

	MsgFlagVerbose = "Increase verbosity (-v for info, -vv for debug, -vvv for trace)"

	MsgPrintShort = "Print a line of text, optionally wrapped and boxed"
	MsgPrintLong  = `Print text with the given style attributes. Without --box the text is
sent as a single line; with --box it is word-wrapped to the paper
width and framed with the configured border.

Text is read from the argument, or from stdin when no argument is
given.`
	MsgPrintExample = `  # Bold centered header
  pos-writer print --bold --justify center "ACME STORE"

  # Boxed total with a double border
  pos-writer print --box --border double "total: 12.50"

  # Pipe to a network printer
  pos-writer print --device - "hello" | nc 192.168.1.50 9100`

	MsgPreviewShort = "Render a print job to the terminal instead of the printer"
	MsgPreviewLong  = `Preview lays text out exactly as the print command would (same
wrapping, same borders) but renders it to the terminal with ANSI
styling, so jobs can be proofed without burning paper.`
	MsgPreviewExample = `  # Proof a boxed paragraph at 32 columns
  pos-writer preview --box --width 32 "the quick brown fox jumps over the lazy dog"`

	MsgBordersShort = "Show the available border styles"
)
