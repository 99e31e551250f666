package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ShowErrorModal shows a dismissable error dialog. It closes on the close
// button or on a tap outside the dialog.
func ShowErrorModal(window fyne.Window, title, message string) {
	showModal(window, IconError+" "+title, message)
}

// ShowInfoModal shows a dismissable informational dialog
func ShowInfoModal(window fyne.Window, title, message string) {
	showModal(window, title, message)
}

func showModal(window fyne.Window, title, message string) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord

	var popup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if popup != nil {
			popup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	content := container.NewVBox(header, messageLabel)

	// Non-modal popup: a tap outside the dialog dismisses it
	popup = widget.NewPopUp(content, window.Canvas())

	canvasSize := window.Canvas().Size()
	size := content.MinSize()
	if size.Width < ModalMinWidth {
		size.Width = ModalMinWidth
	}
	if size.Height < ModalMinHeight {
		size.Height = ModalMinHeight
	}
	popup.Resize(size)
	popup.Move(fyne.NewPos(
		(canvasSize.Width-size.Width)/2,
		(canvasSize.Height-size.Height)/2,
	))
	popup.Show()
}

// showToast shows a short-lived notification in the top-right corner
func showToast(window fyne.Window, message string) {
	label := widget.NewLabel(message)
	label.Truncation = fyne.TextTruncateEllipsis

	popup := widget.NewPopUp(container.NewPadded(label), window.Canvas())

	canvasSize := window.Canvas().Size()
	size := fyne.NewSize(ToastWidth, popup.MinSize().Height)
	popup.Resize(size)
	popup.Move(fyne.NewPos(canvasSize.Width-size.Width-ToastMargin, ToastMargin))
	popup.Show()

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			popup.Hide()
		})
	}()
}
