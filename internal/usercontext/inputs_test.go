package usercontext

import (
	"reflect"
	"testing"
)

func mustParse(t *testing.T, input string) *Context {
	t.Helper()
	c, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse(%s) error = %v", input, err)
	}
	return c
}

func TestInputs_HaveEveryKey(t *testing.T) {
	c := mustParse(t, `{}`)
	want := []string{
		KeyAnxieties, KeyDeadlineDays, KeyFinancialData, KeyFiveYearGoal,
		KeyGoal, KeyGoalsSummary, KeyTodosList, KeyValues,
	}

	for name, in := range map[string]Inputs{
		"plan":        c.PlanInputs("Buy a car", 90),
		"standup":     c.StandupInputs(),
		"realignment": c.RealignmentInputs(),
		"smoke test":  SmokeTestInputs(),
	} {
		if got := in.Keys(); !reflect.DeepEqual(got, want) {
			t.Errorf("%s inputs keys = %v, want %v", name, got, want)
		}
	}
}

func TestPlanInputs(t *testing.T) {
	c := mustParse(t, `{
		"values": ["Family", "Security"],
		"five_year_goal": "Financial independence",
		"financial_data": {"savings": 1200, "income": 5000},
		"anxieties": ["debt", "job"],
		"todos": ["ignored by create_plan"]
	}`)

	got := c.PlanInputs("Buy a car", 90)
	want := Inputs{
		KeyGoal:          "Buy a car",
		KeyDeadlineDays:  "90",
		KeyValues:        "Family, Security",
		KeyFiveYearGoal:  "Financial independence",
		KeyFinancialData: `{"income":5000,"savings":1200}`,
		KeyAnxieties:     "debt, job",
		KeyGoalsSummary:  "Current goal: Buy a car",
		KeyTodosList:     "No current todos",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PlanInputs() =\n%v\nwant\n%v", got, want)
	}
}

func TestPlanInputs_Defaults(t *testing.T) {
	got := mustParse(t, `{}`).PlanInputs("Learn Spanish", 180)

	if got[KeyFiveYearGoal] != "Not set" {
		t.Errorf("five_year_goal = %q, want Not set", got[KeyFiveYearGoal])
	}
	if got[KeyFinancialData] != "{}" {
		t.Errorf("financial_data = %q, want {}", got[KeyFinancialData])
	}
	if got[KeyValues] != "" || got[KeyAnxieties] != "" {
		t.Errorf("values/anxieties = %q/%q, want empty", got[KeyValues], got[KeyAnxieties])
	}
}

func TestPlanInputs_EmptyFiveYearGoalIsKept(t *testing.T) {
	got := mustParse(t, `{"five_year_goal": ""}`).PlanInputs("x", 1)
	if got[KeyFiveYearGoal] != "" {
		t.Errorf("five_year_goal = %q, want empty string as sent", got[KeyFiveYearGoal])
	}
}

func TestPlanInputs_EmptyGoalIsKept(t *testing.T) {
	got := mustParse(t, `{"goals": [{"title": "Run a marathon", "progress": 40}]}`).PlanInputs("", 30)

	if got[KeyGoal] != "" {
		t.Errorf("goal = %q, want empty string as passed", got[KeyGoal])
	}
	if got[KeyGoalsSummary] != "Current goal: " {
		t.Errorf("goals_summary = %q", got[KeyGoalsSummary])
	}
}

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "90", want: 90},
		{in: " 7\n", want: 7},
		{in: "0", want: 0},
		{in: "-3", want: -3},
		{in: "010", want: 10},
		{in: "0x1E", wantErr: true},
		{in: "9.5", wantErr: true},
		{in: "ninety", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseDeadline(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDeadline(%q) = %d, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDeadline(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDeadline(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStandupInputs(t *testing.T) {
	c := mustParse(t, `{
		"values": ["Health"],
		"financial_data": {"income": 5000},
		"goals": [
			{"title": "Run a marathon", "progress": 40},
			{"title": "Read 12 books", "progress": 25.5}
		]
	}`)

	got := c.StandupInputs()

	if got[KeyGoal] != "Run a marathon" {
		t.Errorf("goal = %q, want first goal title", got[KeyGoal])
	}
	if got[KeyDeadlineDays] != "0" {
		t.Errorf("deadline_days = %q, want 0", got[KeyDeadlineDays])
	}
	wantSummary := "- Run a marathon: 40% complete\n- Read 12 books: 25.5% complete"
	if got[KeyGoalsSummary] != wantSummary {
		t.Errorf("goals_summary = %q, want %q", got[KeyGoalsSummary], wantSummary)
	}
	if got[KeyFinancialData] != "{}" {
		t.Errorf("financial_data = %q, want {} regardless of context", got[KeyFinancialData])
	}
	if got[KeyTodosList] != "No current todos" {
		t.Errorf("todos_list = %q", got[KeyTodosList])
	}
}

func TestStandupInputs_NoGoals(t *testing.T) {
	for _, input := range []string{`{}`, `{"goals": []}`} {
		got := mustParse(t, input).StandupInputs()
		if got[KeyGoalsSummary] != "No active goals" {
			t.Errorf("%s: goals_summary = %q, want No active goals", input, got[KeyGoalsSummary])
		}
		if got[KeyGoal] != "No goal set" {
			t.Errorf("%s: goal = %q, want No goal set", input, got[KeyGoal])
		}
	}
}

func TestRealignmentInputs(t *testing.T) {
	c := mustParse(t, `{"todos": ["Email Bob", "Fix sink"], "anxieties": ["time"]}`)

	got := c.RealignmentInputs()

	if got[KeyGoal] != "General productivity" {
		t.Errorf("goal = %q", got[KeyGoal])
	}
	if got[KeyGoalsSummary] != "Reviewing current workload" {
		t.Errorf("goals_summary = %q", got[KeyGoalsSummary])
	}
	if got[KeyTodosList] != "- Email Bob\n- Fix sink" {
		t.Errorf("todos_list = %q", got[KeyTodosList])
	}
	if got[KeyAnxieties] != "time" {
		t.Errorf("anxieties = %q", got[KeyAnxieties])
	}
}

func TestRealignmentInputs_NoTodos(t *testing.T) {
	for _, input := range []string{`{}`, `{"todos": []}`} {
		got := mustParse(t, input).RealignmentInputs()
		if got[KeyTodosList] != "No current todos" {
			t.Errorf("%s: todos_list = %q, want No current todos", input, got[KeyTodosList])
		}
	}
}

func TestSmokeTestInputs(t *testing.T) {
	got := SmokeTestInputs()
	if got[KeyGoal] != "Buy a car" || got[KeyDeadlineDays] != "89" {
		t.Errorf("smoke test goal/deadline = %q/%q", got[KeyGoal], got[KeyDeadlineDays])
	}
	if got[KeyValues] != "Family, Security" {
		t.Errorf("values = %q", got[KeyValues])
	}
}
