package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Loot notification errors
	ErrMsgNoUser          = "no user found in notification"
	ErrMsgUsernameTooLong = "username exceeds maximum length"
	ErrMsgNoItems         = "no items found in notification"

	// Team errors
	ErrMsgInvalidTeamName   = "invalid team name"
	ErrMsgTeamNotFound      = "team not found"
	ErrMsgTeamExists        = "team already exists"
	ErrMsgUserNotFound      = "user not found"
	ErrMsgUserAlreadyOnTeam = "user is already on a team"

	// Upgrade errors
	ErrMsgUnknownBuilding       = "building not found in catalog"
	ErrMsgAlreadyMaxed          = "building is already at max level"
	ErrMsgAlreadyAtMinimum      = "building is already at its starting level"
	ErrMsgInsufficientResources = "insufficient resources"
	ErrMsgNoCostDefined         = "no upgrade cost defined for level"

	// Internal consistency errors
	ErrMsgBuildingMissing         = "team is missing a catalog building"
	ErrMsgCategoryDeductionFailed = "category cost could not be deducted"

	// Configuration errors
	ErrMsgInvalidUpgradeCost = "invalid upgrade cost"

	// Database/System errors
	ErrMsgNotFound      = "not found"
	ErrMsgTxClosed      = "tx is closed"
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Loot notification errors
	ErrNoUser          = errors.New(ErrMsgNoUser)
	ErrUsernameTooLong = errors.New(ErrMsgUsernameTooLong)
	ErrNoItems         = errors.New(ErrMsgNoItems)

	// Team errors
	ErrInvalidTeamName   = errors.New(ErrMsgInvalidTeamName)
	ErrTeamNotFound      = errors.New(ErrMsgTeamNotFound)
	ErrTeamExists        = errors.New(ErrMsgTeamExists)
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
	ErrUserAlreadyOnTeam = errors.New(ErrMsgUserAlreadyOnTeam)

	// Upgrade errors
	ErrUnknownBuilding       = errors.New(ErrMsgUnknownBuilding)
	ErrAlreadyMaxed          = errors.New(ErrMsgAlreadyMaxed)
	ErrAlreadyAtMinimum      = errors.New(ErrMsgAlreadyAtMinimum)
	ErrInsufficientResources = errors.New(ErrMsgInsufficientResources)
	ErrNoCostDefined         = errors.New(ErrMsgNoCostDefined)

	// Internal consistency errors
	ErrBuildingMissing         = errors.New(ErrMsgBuildingMissing)
	ErrCategoryDeductionFailed = errors.New(ErrMsgCategoryDeductionFailed)

	// Configuration errors
	ErrInvalidUpgradeCost = errors.New(ErrMsgInvalidUpgradeCost)

	// Database/System errors
	ErrNotFound = errors.New(ErrMsgNotFound)
)
