package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DEFAULT_SERVER_URL = "http://localhost:8080"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	tokenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			PaddingLeft(2)
)

type step int

const (
	stepEnteringName step = iota
	stepEnteringEmail
	stepEnteringPassword
	stepSigningUp
	stepLoggingIn
	stepComplete
)

type model struct {
	step         step
	name         string
	email        string
	password     string
	token        string
	currentInput string
	message      string
	quitting     bool
}

type signupSuccessMsg struct{}
type loginSuccessMsg struct{ token string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func serverURL() string {
	if url := os.Getenv("MICROFIN_URL"); url != "" {
		return url
	}
	return DEFAULT_SERVER_URL
}

func initialModel() model {
	return model{step: stepEnteringName}
}

func (m model) Init() tea.Cmd {
	return nil
}

func signupUser(name, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"name":     name,
			"email":    email,
			"password": password,
		}

		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL()+"/signup", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			var result map[string]interface{}
			if err := json.NewDecoder(resp.Body).Decode(&result); err == nil {
				if msg, ok := result["message"].(string); ok && msg != "" {
					return errMsg{fmt.Errorf("signup failed: %s", msg)}
				}
			}
			return errMsg{fmt.Errorf("signup failed with status %d", resp.StatusCode)}
		}

		return signupSuccessMsg{}
	}
}

func loginUser(email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}

		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL()+"/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login failed with status %d", resp.StatusCode)}
		}

		var result map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("could not decode login response: %w", err)}
		}

		token, ok := result["token"].(string)
		if !ok || token == "" {
			return errMsg{fmt.Errorf("login response carried no token")}
		}

		return loginSuccessMsg{token: token}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepEnteringName || m.step == stepEnteringEmail || m.step == stepEnteringPassword {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringName:
				if m.currentInput != "" {
					m.name = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringEmail
				}

			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepSigningUp
					m.message = "Creating account..."
					return m, signupUser(m.name, m.email, m.password)
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case signupSuccessMsg:
		m.step = stepLoggingIn
		m.message = "Logging in..."
		return m, loginUser(m.email, m.password)

	case loginSuccessMsg:
		m.token = msg.token
		m.step = stepComplete
		m.message = successStyle.Render("✓ Account ready for " + m.email)

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.currentInput = ""
		m.step = stepEnteringName
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Microfinance Account Setup\n\n"))

	switch m.step {
	case stepEnteringName:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Enter your name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Enter your email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Choose a password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepSigningUp, stepLoggingIn:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n\n")
		s.WriteString("Your token (valid for 1 hour):\n")
		s.WriteString(tokenStyle.Render(m.token) + "\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
