package common

import (
	"context"
	"errors"
	"testing"

	"spectrum/domain/entities"
	"spectrum/domain/services"
	"spectrum/domain/testhelpers"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubLookuper struct {
	result  *services.LookupResult
	err     error
	gotView services.View
	gotRaw  string
	gotReq  string
}

func (s *stubLookuper) Lookup(ctx context.Context, view services.View, raw string) (*services.LookupResult, error) {
	s.gotView = view
	s.gotRaw = raw
	s.gotReq = services.RequestIDFrom(ctx)
	return s.result, s.err
}

func testInteraction() *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			GuildID: "guild-1",
			Member:  &discordgo.Member{User: &discordgo.User{ID: "admin-1"}},
			Type:    discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "record",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "user", Type: discordgo.ApplicationCommandOptionString, Value: "steam:110000112345678"},
				},
			},
		},
	}
}

func TestRunLookup_PublishesAudit(t *testing.T) {
	lookuper := &stubLookuper{result: &services.LookupResult{View: services.ViewRecord}}
	audit := new(testhelpers.MockAuditPublisher)

	var event entities.LookupAudited
	audit.On("PublishLookup", mock.Anything, mock.AnythingOfType("entities.LookupAudited")).
		Run(func(args mock.Arguments) { event = args.Get(1).(entities.LookupAudited) }).
		Return(nil)

	result, err := RunLookup(context.Background(), lookuper, audit, testInteraction(), services.ViewRecord, "steam:110000112345678")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, services.ViewRecord, lookuper.gotView)
	assert.NotEmpty(t, lookuper.gotReq)
	assert.Equal(t, lookuper.gotReq, event.EventID)
	assert.Equal(t, "record", event.View)
	assert.Equal(t, "admin-1", event.RequestedBy)
	assert.Equal(t, "guild-1", event.GuildID)
	assert.Equal(t, OutcomeSuccess, event.Outcome)
	audit.AssertExpectations(t)
}

func TestRunLookup_AuditFailureDoesNotFailCommand(t *testing.T) {
	cmdErr := &services.CommandError{Kind: services.KindPlayerNotFound, Err: entities.ErrPlayerNotFound}
	lookuper := &stubLookuper{err: cmdErr}
	audit := new(testhelpers.MockAuditPublisher)
	audit.On("PublishLookup", mock.Anything, mock.MatchedBy(func(e entities.LookupAudited) bool {
		return e.Outcome == "player_not_found"
	})).Return(errors.New("nats down"))

	_, err := RunLookup(context.Background(), lookuper, audit, testInteraction(), services.ViewBasic, "steam:1")
	assert.Equal(t, cmdErr, err)
	audit.AssertExpectations(t)
}

func TestStringOption(t *testing.T) {
	i := testInteraction()
	assert.Equal(t, "steam:110000112345678", StringOption(i, "user"))
	assert.Empty(t, StringOption(i, "missing"))
}

func TestInteractionUserID_DM(t *testing.T) {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{User: &discordgo.User{ID: "u-9"}}}
	assert.Equal(t, "u-9", InteractionUserID(i))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, "service_unavailable", Outcome(&services.CommandError{Kind: services.KindServiceUnavailable}))
	assert.Equal(t, "error", Outcome(errors.New("x")))
}
