// Package tui implements the interactive reservation form interface: a home
// menu, a booking form, the reservation list, and an edit-by-ID form. All
// pages run inside one bubbletea event loop; database calls are synchronous
// and block the interface for their duration.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"flight_reservation/helper"
	"flight_reservation/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"gorm.io/gorm"
)

type page int

const (
	pageHome page = iota
	pageBooking
	pageList
	pageEdit
)

// editPhase splits the edit page into ID lookup and field editing, the same
// two-step flow the list/edit screens expose.
type editPhase int

const (
	phaseEnterID editPhase = iota
	phaseEditFields
)

var menuItems = []string{"Book Flight", "View Reservations", "Quit"}

type Model struct {
	db *gorm.DB

	page   page
	cursor int

	reservations []model.Reservation

	fields reservationFields
	form   *huh.Form

	editPhase editPhase
	editIDRaw string
	editID    uint

	deleting    bool
	deleteIDRaw string
	deleteForm  *huh.Form

	status string
	errMsg string

	quitting bool
}

func New(db *gorm.DB) Model {
	return Model{db: db, page: pageHome}
}

// Run starts the form interface and blocks until the user quits.
func Run(db *gorm.DB) error {
	_, err := tea.NewProgram(New(db), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.page {
	case pageHome:
		return m.updateHome(msg)
	case pageBooking:
		return m.updateBooking(msg)
	case pageList:
		return m.updateList(msg)
	case pageEdit:
		return m.updateEdit(msg)
	}
	return m, nil
}

func (m Model) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		switch m.cursor {
		case 0:
			return m.openBooking()
		case 1:
			return m.openList()
		case 2:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) openBooking() (tea.Model, tea.Cmd) {
	m.page = pageBooking
	m.status = ""
	m.errMsg = ""
	m.fields = reservationFields{}
	m.form = newReservationForm(&m.fields, true)
	return m, m.form.Init()
}

func (m Model) openList() (tea.Model, tea.Cmd) {
	m.page = pageList
	m.deleting = false
	m.errMsg = ""
	m.loadReservations()
	return m, nil
}

func (m *Model) loadReservations() {
	reservations, _, err := helper.ListReservations(m.db, model.ReservationFilter{})
	if err != nil {
		m.errMsg = "Could not load reservations: " + err.Error()
		return
	}
	m.reservations = reservations
}

func (m Model) updateBooking(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		reservation, err := helper.CreateReservation(m.db, m.fields.createInput())
		if err != nil {
			m.errMsg = "Could not save reservation: " + err.Error()
		} else {
			m.status = fmt.Sprintf("Reservation saved! Booking code %s", reservation.Code)
			m.errMsg = ""
		}
		// Fresh form so the next booking starts from empty fields.
		m.fields = reservationFields{}
		m.form = newReservationForm(&m.fields, true)
		return m, m.form.Init()
	case huh.StateAborted:
		m.page = pageHome
		return m, nil
	}
	return m, cmd
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.deleting {
		return m.updateDelete(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "b", "esc":
		m.page = pageHome
		m.status = ""
		m.errMsg = ""
	case "e":
		m.page = pageEdit
		m.editPhase = phaseEnterID
		m.editIDRaw = ""
		m.status = ""
		m.errMsg = ""
		m.form = newIDForm("Reservation ID", &m.editIDRaw)
		return m, m.form.Init()
	case "d":
		m.deleting = true
		m.deleteIDRaw = ""
		m.status = ""
		m.errMsg = ""
		m.deleteForm = newIDForm("ID to delete", &m.deleteIDRaw)
		return m, m.deleteForm.Init()
	case "r":
		m.loadReservations()
	}
	return m, nil
}

func (m Model) updateDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.deleteForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.deleteForm = f
	}

	switch m.deleteForm.State {
	case huh.StateCompleted:
		return m.finishDelete()
	case huh.StateAborted:
		m.deleting = false
		return m, nil
	}
	return m, cmd
}

func (m Model) finishDelete() (tea.Model, tea.Cmd) {
	m.deleting = false
	id, _ := strconv.Atoi(m.deleteIDRaw)
	if err := helper.DeleteReservation(m.db, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			m.errMsg = "ID not found"
		} else {
			m.errMsg = "Could not delete reservation: " + err.Error()
		}
	} else {
		m.status = "Reservation deleted"
	}
	m.loadReservations()
	return m, nil
}

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.editPhase == phaseEnterID {
			return m.loadEditTarget()
		}
		return m.saveEdit()
	case huh.StateAborted:
		return m.openList()
	}
	return m, cmd
}

func (m Model) loadEditTarget() (tea.Model, tea.Cmd) {
	id, _ := strconv.Atoi(m.editIDRaw)
	reservation, err := helper.GetReservation(m.db, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			m.errMsg = "ID not found"
		} else {
			m.errMsg = "Could not read reservation: " + err.Error()
		}
		m.editIDRaw = ""
		m.form = newIDForm("Reservation ID", &m.editIDRaw)
		return m, m.form.Init()
	}

	m.errMsg = ""
	m.editID = reservation.ID
	m.editPhase = phaseEditFields
	m.fields.fill(reservation)
	m.form = newReservationForm(&m.fields, false)
	return m, m.form.Init()
}

func (m Model) saveEdit() (tea.Model, tea.Cmd) {
	_, err := helper.UpdateReservation(m.db, m.editID, m.fields.updateInput())

	// openList clears messages, so set them on the returned model.
	next, cmd := m.openList()
	list := next.(Model)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			list.errMsg = "ID not found"
		} else {
			list.errMsg = "Could not update reservation: " + err.Error()
		}
		return list, cmd
	}

	list.status = "Changes saved!"
	return list, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	switch m.page {
	case pageHome:
		b.WriteString(titleStyle.Render("Flight Reservation System"))
		b.WriteString("\n")
		for i, item := range menuItems {
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + item))
			} else {
				b.WriteString("  " + item)
			}
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("up/down: move • enter: select • q: quit"))
	case pageBooking:
		b.WriteString(titleStyle.Render("Book Flight"))
		b.WriteString("\n")
		b.WriteString(m.form.View())
		b.WriteString(helpStyle.Render("esc: back to home"))
	case pageList:
		b.WriteString(titleStyle.Render("Reservations"))
		b.WriteString("\n")
		b.WriteString(m.renderList())
		if m.deleting {
			b.WriteString("\n")
			b.WriteString(m.deleteForm.View())
		} else {
			b.WriteString(helpStyle.Render("e: edit • d: delete • r: refresh • b: back"))
		}
	case pageEdit:
		b.WriteString(titleStyle.Render("Edit Reservation"))
		b.WriteString("\n")
		b.WriteString(m.form.View())
		b.WriteString(helpStyle.Render("esc: back to list"))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderList() string {
	if len(m.reservations) == 0 {
		return rowStyle.Render("No reservations yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %-20s %-8s %-12s %-12s %-11s %-5s %s",
		"ID", "Name", "Flight", "From", "To", "Date", "Seat", "Code")))
	b.WriteString("\n")
	for _, r := range m.reservations {
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-5d %-20s %-8s %-12s %-12s %-11s %-5s %s",
			r.ID, r.Name, r.FlightNumber, r.Departure, r.Destination, r.Date, r.SeatNumber, r.Code)))
		b.WriteString("\n")
	}
	return b.String()
}
