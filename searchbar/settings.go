package searchbar

// Presentation settings take effect on the next View. Titles and the
// cancel icon also resize the buttons immediately.

func (m *Model) SetChipColors(background, foreground string) {
	m.must()
	m.cfg.Colors.ChipBackground = background
	m.cfg.Colors.ChipForeground = foreground
	m.applyStyles()
}

func (m *Model) SetSearchButtonColor(background string) {
	m.must()
	m.cfg.Colors.SearchBackground = background
	m.applyStyles()
}

func (m *Model) SetSearchTitleColor(color string) {
	m.must()
	m.cfg.Colors.SearchTitle = color
	m.applyStyles()
}

func (m *Model) SetCancelTitleColor(color string) {
	m.must()
	m.cfg.Colors.CancelTitle = color
	m.applyStyles()
}

// SetButtonAttributes sets text attributes such as "bold,underline" for
// both buttons.
func (m *Model) SetButtonAttributes(attrs string) {
	m.must()
	m.cfg.Fonts.Button = attrs
	m.applyStyles()
}

func (m *Model) SetChipAttributes(attrs string) {
	m.must()
	m.cfg.Fonts.Chip = attrs
	m.applyStyles()
}

func (m *Model) SetInputAttributes(attrs string) {
	m.must()
	m.cfg.Fonts.Input = attrs
	m.applyStyles()
}

func (m *Model) SetCancelTitle(title string) {
	m.must()
	m.cfg.Bar.CancelTitle = title
	m.mode.SetButtons(m.buttons())
}

// SetCancelIcon replaces the cancel title with icon; "" restores the title.
func (m *Model) SetCancelIcon(icon string) {
	m.must()
	m.cfg.Bar.CancelIcon = icon
	m.mode.SetButtons(m.buttons())
}

func (m *Model) SetSearchTitle(title string) {
	m.must()
	m.cfg.Bar.SearchTitle = title
	m.mode.SetButtons(m.buttons())
}

func (m *Model) SetPlaceholder(placeholder string) {
	m.must()
	m.cfg.Bar.Placeholder = placeholder
	m.cell.SetPlaceholder(placeholder)
}

func (m *Model) CancelTitle() string {
	m.must()
	return m.cfg.Bar.CancelTitle
}

func (m *Model) SearchTitle() string {
	m.must()
	return m.cfg.Bar.SearchTitle
}

func (m *Model) Placeholder() string {
	m.must()
	return m.cell.Placeholder()
}
