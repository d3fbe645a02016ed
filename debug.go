// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package rudd

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogStats sends the statistics of the BDD to its logger, at debug level. When
// table is true we also log one entry for every node in the node table.
func (b *BDD) LogStats(table bool) {
	if ce := b.log.Check(zapcore.DebugLevel, "bdd stats"); ce != nil {
		ce.Write(
			zap.Int("varnum", int(b.varnum)),
			zap.Int("nodes", len(b.nodes)),
			zap.Int("produced", b.produced),
			zap.Int("uniqueAccess", b.uniqueAccess),
			zap.Int("uniqueHit", b.uniqueHit),
			zap.Int("uniqueMiss", b.uniqueMiss),
			zap.Int("iteHit", b.itecache.opHit),
			zap.Int("iteMiss", b.itecache.opMiss),
			zap.Int("existHit", b.quantcache.opHit),
			zap.Int("existMiss", b.quantcache.opMiss),
			zap.Int("replaceHit", b.replacecache.opHit),
			zap.Int("replaceMiss", b.replacecache.opMiss),
			zap.Bool("errored", b.err != nil),
		)
	}
	if table {
		b.logTable()
	}
}

func (b *BDD) logTable() {
	if !b.log.Core().Enabled(zapcore.DebugLevel) {
		return
	}
	if b.err != nil {
		b.log.Debug("bdd error status", zap.Error(b.err))
	}
	for k, n := range b.nodes {
		b.log.Debug("node",
			zap.Int("id", k),
			zap.Int32("level", n.level),
			zap.Int("low", int(n.low)),
			zap.Int("high", int(n.high)))
	}
}
