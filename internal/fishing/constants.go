package fishing

// Player-facing text written onto items
const (
	PlayerHeadNameSuffix = "の頭"
	PlayerHeadLore       = "イルカが好意であなたの頭を持ってきてくれました。"
)

// Probability explanation fragments
const (
	ExplainPrefix         = "確率: "
	ExplainAlways         = "100%"
	ExplainNever          = "0%"
	ExplainAdjustmentFmt  = " (補正値: %s%s)"
	ExplainLuckOfTheSea   = " 宝釣り+%.2f%%"
	ExplainFortunePlus    = " 幸運+%.2f%%"
	ExplainFortuneMinus   = " 幸運%.2f%%"
	ExplainEquipmentPlus  = " 装備+%.2f%%"
	ExplainEquipmentMinus = " 装備%.2f%%"
	ExplainExperience     = " 経験値+%.2f%%"
	ExplainWeather        = " %s+%.2f%%"
	ExplainTiming         = " タイミング+%.2f%%"
)

// MaxCategorySuggestions caps the "did you mean" list for unknown debug categories
const MaxCategorySuggestions = 3

// Warnings attached to degraded results
const (
	WarnLootUnavailable      = "loot unavailable, original item kept"
	WarnUnknownDebugCategory = "debug category not configured, selecting normally"
	WarnPublishFailed        = "event publish failed"
)

// Log messages
const (
	LogMsgCatchResolved      = "Fishing attempt resolved"
	LogMsgDoubleFishing      = "Double fishing triggered"
	LogMsgLootUnavailable    = "Loot resolution failed, keeping original item"
	LogMsgUnknownDebugCat    = "Debug rod category not configured"
	LogMsgPublishFailed      = "Failed to publish fishing event"
	LogMsgFishingDisabled    = "Fishing customization disabled, passing catch through"
	LogMsgSessionRejected    = "Fishing session transition rejected"
	LogMsgDebugCategorySet   = "Debug category set"
	LogMsgClaimantLookupFail = "Failed to look up unique claimant"
)

// Log fields
const (
	LogFieldPlayerID  = "player_id"
	LogFieldWorld     = "world"
	LogFieldCategory  = "category"
	LogFieldItem      = "item"
	LogFieldTotalLuck = "total_luck"
	LogFieldRerolls   = "rerolls"
	LogFieldForced    = "forced"
	LogFieldBonus     = "bonus"
	LogFieldState     = "state"
	LogFieldUniqueID  = "unique_id"
	LogFieldError     = "error"
)
