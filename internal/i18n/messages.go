// Package i18n provides internationalization support for goal-crew.
// All user-facing strings are centralized here for future localization.
package i18n

// Message keys organized by functional area.
// The current implementation uses English (en-US) as the default.

// Common messages
const (
	MsgSuccess           = "success"
	MsgFailed            = "failed"
	MsgCompleted         = "completed"
	MsgCancelled         = "cancelled"
	MsgYes               = "yes"
	MsgNo                = "no"
	MsgNotSet            = "Not set"
	MsgNoGoalSet         = "No goal set"
	MsgNoGoals           = "No active goals"
	MsgNoTodos           = "No current todos"
	MsgGeneralGoal       = "General productivity"
	MsgReviewingWorkload = "Reviewing current workload"
	MsgCurrentGoal       = "Current goal: %s"

	// Input prompts
	MsgInputEndHint     = "(enter an empty line to finish)"
	MsgAnswerHint       = "(Enter to confirm, Esc to cancel)"
	MsgEntriesHint      = "(one per line, Ctrl+D to finish, Esc to cancel)"
	MsgEntryPlaceholder = "One per line..."
	MsgChoiceHint       = "(↑/↓ or 1-%d, Enter to choose, Esc to cancel)"
	MsgSelectRange      = "Choose (1-%d): "
	MsgInvalidSelection = "invalid selection: %s"
	MsgNoOptions        = "no options to choose from"
)

// Command descriptions
const (
	// Root command
	CmdRootShort = "Run the goal crew and print JSON for the app backend"
	CmdRootLong  = `goal-crew runs a crew of LLM agents (boss, financial advisor, stoic coach,
creative agent) over a user context read from standard input and prints a
single JSON object on standard output.

Running goal-crew without a command performs a smoke test with fixed inputs.

Examples:
  echo '{"values":["Family"]}' | goal-crew create_plan "Buy a car" 90
  echo '{"goals":[{"title":"Run a marathon","progress":40}]}' | goal-crew daily_standup
  echo '{"todos":["Email Bob","Fix sink"]}' | goal-crew realignment`

	CmdVersionShort    = "Show version information"
	CmdCompletionShort = "Generate shell completion scripts"

	CmdCreatePlanShort = "Create a goal plan with the whole crew"
	CmdCreatePlanLong  = `Break a goal down into a plan with milestones, a financial analysis,
a motivation strategy and emotional support.

Examples:
  goal-crew create_plan "Buy a car" 90 < context.json
  goal-crew create_plan "Learn Spanish" 180 --context-file context.json`

	CmdDailyStandupShort = "Generate the daily standup briefing"
	CmdDailyStandupLong  = `Summarize the user's active goals into a morning briefing.

Examples:
  goal-crew daily_standup < context.json`

	CmdRealignmentShort = "Filter an overwhelming todo list"
	CmdRealignmentLong  = `Emergency realignment: decide which todos to drop and which to focus on.

Examples:
  goal-crew realignment < context.json`

	CmdServeShort = "Serve the crew over HTTP"
	CmdServeLong  = `Serve the crew endpoints used by the app backend:

  POST /crew/create-plan
  POST /crew/daily-standup
  POST /crew/realignment
  POST /crew/homescreen-insights
  GET  /health

Examples:
  goal-crew serve
  goal-crew serve --addr :8090`

	CmdContextShort     = "Manage user context files"
	CmdContextInitShort = "Interactively write a user context file"
	CmdContextInitLong  = `Ask for values, a five-year goal and anxieties, then write them to a
context JSON file that can be passed with --context-file.

Examples:
  goal-crew context init
  goal-crew context init --output me.json`

	CmdConfigShort     = "Configuration management"
	CmdConfigShowShort = "Show current configuration"
	CmdConfigInitShort = "Write a default configuration file"
	CmdConfigPathShort = "Show configuration file path"
	CmdConfigLong      = `Show or manage goal-crew configuration.

Examples:
  goal-crew config           # show current configuration
  goal-crew config init      # write a default configuration file
  goal-crew config path      # show configuration file path`
)

// Flag descriptions
const (
	FlagConfig      = "config file path (default: .goal-crew.yaml)"
	FlagDryRun      = "do not call the LLM, return canned answers"
	FlagVerbose     = "verbose progress on stderr"
	FlagDebug       = "debug mode"
	FlagProvider    = "LLM provider: gemini, command, dry-run"
	FlagModel       = "LLM model name"
	FlagContextFile = "read the user context from a file instead of stdin"
	FlagAddr        = "listen address"
	FlagOutputFile  = "output file"
	FlagForce       = "overwrite without asking"
)

// UI messages
const (
	UICurrentConfig    = "Current configuration"
	UIConfigFilePath   = "Config file: %s"
	UIConfigExists     = "Config file already exists: %s"
	UIConfirmOverwrite = "Overwrite it?"
	UIConfigWritten    = "Config file written: %s"
	UIConfigEditHint   = "Edit this file to customize settings"
	UIContextProfile   = "User context"
	UIContextExists    = "Context file already exists: %s"
	UIContextAction    = "What should happen to it?"
	UIContextWritten   = "Context written: %s"
	UIContextMerge     = "Update profile fields, keep goals and todos"
	UIContextReplace   = "Replace the whole file"
	UIContextCancel    = "Cancel"
	UIAskValues        = "What are your core values? (one per line)"
	UIAskFiveYearGoal  = "Where do you want to be in five years?"
	UIAskAnxieties     = "What is making you anxious right now? (one per line)"
	UICrewRunning      = "Running crew %s..."
	UICrewDone         = "Crew %s finished in %s"
	UICrewFailed       = "Crew %s failed"
	UITaskStep         = "%s -> %s"
	UITaskDone         = "%s done (%s, ~%d tokens)"
	UIServerListening  = "Listening on %s"
	UIStdinIsTerminal  = "stdin is a terminal, using an empty context"
)

// Error operations
const (
	ErrOpUsage    = "usage"
	ErrOpContext  = "context"
	ErrOpConfig   = "config"
	ErrOpCrew     = "crew"
	ErrOpProvider = "provider"
	ErrOpResult   = "result"
	ErrOpFile     = "file"
)

// Error messages
const (
	ErrMsgCreatePlanUsage   = "goal-crew create_plan <goal> <deadline_days>"
	ErrMsgInvalidContext    = "invalid context JSON"
	ErrMsgInvalidDeadline   = "deadline_days must be an integer, got %q"
	ErrMsgLoadConfig        = "failed to load configuration"
	ErrMsgInvalidDefinition = "invalid crew definition"
	ErrMsgUnknownPipeline   = "no pipeline for command %q"
	ErrMsgMissingInput      = "template variable %q not found in inputs"
	ErrMsgTaskFailed        = "task %s failed"
	ErrMsgProviderUnknown   = "unknown provider %q"
	ErrMsgProviderUnavail   = "provider %s is not available"
	ErrMsgMissingAPIKey     = "API key not set, export %s"
	ErrMsgEmptyResponse     = "empty response from model"
	ErrMsgBriefingParse     = "briefing does not contain usable JSON"
	ErrMsgFileNotFound      = "file not found: %s"
)
