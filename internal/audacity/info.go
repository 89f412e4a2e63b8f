package audacity

import "context"

// InfoType selects what GetInfo reports on.
type InfoType string

const (
	InfoCommands    InfoType = "Commands"
	InfoMenus       InfoType = "Menus"
	InfoPreferences InfoType = "Preferences"
	InfoTracks      InfoType = "Tracks"
	InfoClips       InfoType = "Clips"
	InfoEnvelopes   InfoType = "Envelopes"
	InfoLabels      InfoType = "Labels"
	InfoBoxes       InfoType = "Boxes"
)

// InfoFormat selects the serialization of GetInfo and Help output.
type InfoFormat string

const (
	FormatJSON  InfoFormat = "JSON"
	FormatLISP  InfoFormat = "LISP"
	FormatBrief InfoFormat = "Brief"
)

// Info returns the GetInfo payload for the given subject, without the
// status trailer.
func (c *Client) Info(ctx context.Context, infoType InfoType, format InfoFormat) (string, error) {
	res, err := c.run(ctx, "GetInfo", map[string]any{
		"Type":   infoType,
		"Format": format,
	})
	if err != nil {
		return "", err
	}
	return res.Payload, nil
}

// Help returns the application's own schema description of one command.
func (c *Client) Help(ctx context.Context, command string, format InfoFormat) (string, error) {
	res, err := c.run(ctx, "Help", map[string]any{
		"Command": command,
		"Format":  format,
	})
	if err != nil {
		return "", err
	}
	return res.Payload, nil
}

// Message sends text to the application, which echoes it back. Useful as a
// liveness probe.
func (c *Client) Message(ctx context.Context, text string) (string, error) {
	res, err := c.run(ctx, "Message", map[string]any{"Text": text})
	if err != nil {
		return "", err
	}
	return res.Payload, nil
}

// GetPreference reads one preference value by its internal name, such as
// "/GUI/Theme".
func (c *Client) GetPreference(ctx context.Context, name string) (string, error) {
	res, err := c.run(ctx, "GetPreference", map[string]any{"Name": name})
	if err != nil {
		return "", err
	}
	return res.Payload, nil
}

// SetPreference writes one preference value. Reload makes the application
// reread its preferences, which some settings need to take effect.
func (c *Client) SetPreference(ctx context.Context, name, value string, reload bool) error {
	_, err := c.run(ctx, "SetPreference", map[string]any{
		"Name":   name,
		"Value":  value,
		"Reload": reload,
	})
	return err
}
