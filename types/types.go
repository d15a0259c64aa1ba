package types

import (
	"github.com/tliron/glsp"
	proto "github.com/tliron/glsp/protocol_3_16"
)

type Uri = proto.DocumentUri
type Ctx = glsp.Context
