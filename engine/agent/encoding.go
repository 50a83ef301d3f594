package agent

import engine "github.com/jason-s-yu/schnapsen/engine"

// Encode writes the InputDim feature vector for p and the moves of one
// trick into out. Either move may be nil: a leader deciding passes only its
// own candidate as leaderMove, a follower passes both.
// out is zeroed internally before writing.
//
// Layout:
//
//	[0-119]   card locations (20 cards × 6-dim one-hot CardLocation)
//	[120-123] my direct, my pending, opponent direct, opponent pending (/66)
//	[124-127] trump suit (4-dim one-hot)
//	[128-129] phase (2-dim one-hot)
//	[130]     talon size (/10)
//	[131-132] role: leader, follower
//	[133-144] leader move (kind 3 + suit 4 + rank 5), zero if absent
//	[145-156] follower move, zero if absent
func Encode(p *engine.PlayerPerspective, leaderMove, followerMove *engine.Move, out *[InputDim]float32) {
	*out = [InputDim]float32{}
	offset := 0

	b := NewBeliefs(p)
	for i, loc := range b.Locations {
		out[offset+i*int(NumLocations)+int(loc)] = 1.0
	}
	offset += CardDim
	// offset = 120

	me, opp := p.MyScore(), p.OpponentScore()
	out[offset] = float32(me.DirectPoints) / pointScale
	out[offset+1] = float32(me.PendingPoints) / pointScale
	out[offset+2] = float32(opp.DirectPoints) / pointScale
	out[offset+3] = float32(opp.PendingPoints) / pointScale
	offset += ScoreDim
	// offset = 124

	out[offset+int(p.TrumpSuit())] = 1.0
	offset += SuitDim
	// offset = 128

	out[offset+int(p.Phase())] = 1.0
	offset += PhaseDim
	// offset = 130

	out[offset] = float32(p.TalonSize()) / float32(engine.TalonCapacity)
	offset += TalonDim
	// offset = 131

	if p.AmILeader() {
		out[offset] = 1.0
	} else {
		out[offset+1] = 1.0
	}
	offset += RoleDim
	// offset = 133

	encodeMove(leaderMove, out[offset:offset+MoveDim])
	offset += MoveDim
	encodeMove(followerMove, out[offset:offset+MoveDim])
	// offset = 157
}

// encodeMove writes kind, suit and rank one-hots of m into dst.
func encodeMove(m *engine.Move, dst []float32) {
	if m == nil {
		return
	}
	c := m.PlayedCard()
	dst[int(m.Kind)] = 1.0
	dst[3+int(c.Suit())] = 1.0
	dst[3+engine.NumSuits+int(c.Rank())] = 1.0
}

// Vector is Encode into a freshly allocated slice.
func Vector(p *engine.PlayerPerspective, leaderMove, followerMove *engine.Move) []float32 {
	var out [InputDim]float32
	Encode(p, leaderMove, followerMove, &out)
	return out[:]
}
