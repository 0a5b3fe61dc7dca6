package discord

// Friendly message constants for Discord responses
const (
	// Teams
	MsgTeamNotFound      = "🛡️ **Team Not Found**\nMaybe check the spelling?"
	MsgTeamExists        = "🛡️ **Team Already Exists**\nPick another name."
	MsgInvalidTeamName   = "🛡️ **Invalid Team Name**"
	MsgUserNotFound      = "👤 **Player Not Found**\nAre they on a team yet?"
	MsgUserAlreadyOnTeam = "👤 **Already On A Team**\nRemove them from their current team first."
	MsgUsernameTooLong   = "👤 **Invalid Username**\nRuneScape names are at most 15 characters."

	// Town
	MsgUnknownBuilding       = "🏚️ **Unknown Building**\nCheck `/town` for the list."
	MsgAlreadyMaxed          = "🏰 **Fully Upgraded**\nThat building is already at max level."
	MsgAlreadyAtMinimum      = "🏚️ **Nothing To Tear Down**\nThat building is at its starting level."
	MsgInsufficientResources = "⚠️ **Not Enough Resources!**\nYour team can't afford that upgrade yet."
	MsgNoCostDefined         = "🏚️ **No Upgrade Available**\nNo cost is configured for the next level."

	MsgGenericError = "❌ Something went wrong."
)
