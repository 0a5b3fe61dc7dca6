package team

const (
	logMsgTeamCreated   = "Team created"
	logMsgTeamDeleted   = "Team deleted"
	logMsgMemberAdded   = "Member added to team"
	logMsgMemberRemoved = "Member removed from team"
)
