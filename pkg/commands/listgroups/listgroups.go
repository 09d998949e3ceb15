package listgroups

import (
	"github.com/arthur-debert/relfiles/pkg/config"
	"github.com/arthur-debert/relfiles/pkg/logging"
	"github.com/arthur-debert/relfiles/pkg/types"
)

// Options defines the options for the ListGroups command.
type Options struct {
	Config *config.Config
}

// ListGroups reports the registered groups in priority order.
func ListGroups(opts Options) *types.ListGroupsResult {
	log := logging.GetLogger("commands.listgroups")

	result := &types.ListGroupsResult{
		Groups: make([]types.GroupInfo, len(opts.Config.Groups)),
	}
	for i, g := range opts.Config.Groups {
		result.Groups[i] = types.GroupInfo{
			Name:     g.Name,
			Priority: i + 1,
			Patterns: g.Patterns,
		}
	}

	log.Debug().Int("groupCount", len(result.Groups)).Msg("Command finished")
	return result
}
