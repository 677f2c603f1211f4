package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/INTERPOLALERT/back-to-life/internal/engine"
	"github.com/INTERPOLALERT/back-to-life/internal/storage"
	"github.com/INTERPOLALERT/back-to-life/internal/ui"
)

type homeModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	profile   *storage.Profile
	selection *engine.Selection
	bonus     []storage.Quest
	doneToday bool

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	profile   *storage.Profile
	selection *engine.Selection
	bonus     []storage.Quest
	doneToday bool
	err       error
}

type completedMsg struct {
	res *engine.CompletionResult
	err error
}

type easierMsg struct {
	quest *storage.Quest
	err   error
}

func newHomeModel(ctx context.Context, svc *engine.Service) homeModel {
	return homeModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loading today's quest…",
	}
}

func (m homeModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m homeModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.ProfileRepo().GetOrCreate(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		sel, err := m.svc.SelectDailyQuest(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		bonus, err := m.svc.SelectBonusQuests(m.ctx, sel.Quest, 3)
		if err != nil {
			return loadedMsg{err: err}
		}
		done, err := m.svc.HasCompletedPrimaryToday(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: p, selection: sel, bonus: bonus, doneToday: done}
	}
}

func (m homeModel) completeCmd(q storage.Quest, primary bool) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.RecordCompletion(m.ctx, q.ID, q.XPValue, 0, primary)
		return completedMsg{res: res, err: err}
	}
}

func (m homeModel) easierCmd(q storage.Quest) tea.Cmd {
	return func() tea.Msg {
		quest, err := m.svc.AdaptQuestOnFailure(m.ctx, q.ID)
		return easierMsg{quest: quest, err: err}
	}
}

// quests returns the selectable quest rows: primary first, bonuses after.
func (m homeModel) quests() []storage.Quest {
	if m.selection == nil {
		return nil
	}
	out := []storage.Quest{m.selection.Quest}
	return append(out, m.bonus...)
}

func (m homeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.selection = msg.selection
		m.bonus = msg.bonus
		m.doneToday = msg.doneToday
		m.selected = 0
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil

	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.LevelUp {
			m.lastLog = fmt.Sprintf("%s +%d XP, level %d → %d, streak %d",
				ui.BadgeLevelUp, msg.res.XPAwarded, msg.res.LevelBefore, msg.res.LevelAfter, msg.res.Streak)
		} else {
			m.lastLog = fmt.Sprintf("+%d XP, streak %d days", msg.res.XPAwarded, msg.res.Streak)
		}
		return m, m.loadCmd()

	case easierMsg:
		if msg.err != nil {
			m.lastLog = "No easier quest: " + msg.err.Error()
			return m, nil
		}
		if m.selected == 0 && m.selection != nil {
			m.selection.Quest = *msg.quest
		} else if i := m.selected - 1; i >= 0 && i < len(m.bonus) {
			m.bonus[i] = *msg.quest
		}
		m.lastLog = "Swapped in an easier quest: " + msg.quest.Title
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.quests())-1 {
				m.selected++
			}
			return m, nil
		case "e":
			qs := m.quests()
			if m.selected >= 0 && m.selected < len(qs) {
				return m, m.easierCmd(qs[m.selected])
			}
			return m, nil
		case "c", " ", "enter":
			qs := m.quests()
			if m.selected < 0 || m.selected >= len(qs) {
				return m, nil
			}
			primary := m.selected == 0
			if primary && m.doneToday {
				m.lastLog = "Primary quest already completed today."
				return m, nil
			}
			m.lastLog = "Completing " + qs[m.selected].Title + "…"
			return m, m.completeCmd(qs[m.selected], primary)
		}
	}
	return m, nil
}

func (m homeModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading || m.profile == nil || m.selection == nil {
		return "Back to Life — loading…\n"
	}

	var b strings.Builder

	next := engine.XPForNextLevel(m.profile.XP)
	bar := ui.ProgressBar(engine.XPPerLevel-next, engine.XPPerLevel, 24)
	fmt.Fprintf(&b, "Back to Life | Level %d | XP %d %s | %s %d day streak\n",
		m.profile.Level, m.profile.XP, bar, ui.IconFlame, m.profile.Streak)
	b.WriteString(ui.Muted.Render(engine.ChampionMessage(m.profile)) + "\n\n")

	if m.doneToday {
		b.WriteString(ui.Good.Render(ui.IconDone+" Today's quest is complete.") + " Bonus quests below.\n\n")
	}

	for i, q := range m.quests() {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		label := "Bonus"
		if i == 0 {
			label = "Today"
		}
		fmt.Fprintf(&b, "%s[%s] %s %s (+%d xp, ~%d min)\n",
			cursor, label, ui.Key.Render(q.Title), ui.Muted.Render("d"+fmt.Sprint(q.Difficulty)), q.XPValue, q.DurationMinutes)
		if i == m.selected {
			b.WriteString("      " + ui.Muted.Render(q.Instructions) + "\n")
		}
	}

	b.WriteString("\n" + ui.H2.Render("Why this quest") + "\n")
	b.WriteString(m.selection.Reason + "\n")

	b.WriteString("\n" + ui.Muted.Render("↑/↓ move · c complete · e easier · r refresh · q quit") + "\n")
	b.WriteString(m.lastLog + "\n")
	return b.String()
}
