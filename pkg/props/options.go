package props

// options lists every layout option identifier accepted by elkjs 0.11,
// with the value kind it carries and the graph elements it applies to.
var options = map[string]Option{
	"org.eclipse.elk.alg.libavoid.anglePenalty":                                           {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.clusterCrossingPenalty":                                 {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.crossingPenalty":                                        {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.enableHyperedgesFromCommonSource":                       {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.fixedSharedPathPenalty":                                 {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.idealNudgingDistance":                                   {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.improveHyperedgeRoutesMovingAddingAndDeletingJunctions": {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.improveHyperedgeRoutesMovingJunctions":                  {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.isCluster":                                              {Kind: KindBool, Targets: TargetNode},
	"org.eclipse.elk.alg.libavoid.nudgeOrthogonalSegmentsConnectedToShapes":               {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.nudgeOrthogonalTouchingColinearSegments":                {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.nudgeSharedPathsWithCommonEndPoint":                     {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.penaliseOrthogonalSharedPathsAtConnEnds":                {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.performUnifyingNudgingPreprocessingStep":                {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.portDirectionPenalty":                                   {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.processTimeout":                                         {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.reverseDirectionPenalty":                                {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.segmentPenalty":                                         {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.alg.libavoid.shapeBufferDistance":                                    {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.algorithm":                                                           {Kind: KindString, Targets: TargetParent},
	"org.eclipse.elk.alignment":                                                           {Kind: KindEnum, Targets: TargetNode},
	"org.eclipse.elk.animTimeFactor":                                                      {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.animate":                                                             {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.aspectRatio":                                                         {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.bendPoints":                                                          {Kind: KindAny, Targets: TargetEdge},
	"org.eclipse.elk.box.packingMode":                                                     {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.childAreaHeight":                                                     {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.childAreaWidth":                                                      {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.commentBox":                                                          {Kind: KindBool, Targets: TargetNode},
	"org.eclipse.elk.compaction.compactionStrategy":                                       {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.compaction.orthogonal":                                               {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.contentAlignment":                                                    {Kind: KindEnumSet, Targets: TargetParent},
	"org.eclipse.elk.debugMode":                                                           {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.direction":                                                           {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.disco.componentCompaction.componentLayoutAlgorithm":                  {Kind: KindString, Targets: TargetParent},
	"org.eclipse.elk.disco.componentCompaction.strategy":                                  {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.disco.debug.discoGraph":                                              {Kind: KindAny, Targets: TargetParent},
	"org.eclipse.elk.disco.debug.discoPolys":                                              {Kind: KindAny, Targets: TargetParent},
	"org.eclipse.elk.edge.thickness":                                                      {Kind: KindFloat, Targets: TargetEdge},
	"org.eclipse.elk.edge.type":                                                           {Kind: KindEnum, Targets: TargetEdge},
	"org.eclipse.elk.edgeLabels.inline":                                                   {Kind: KindBool, Targets: TargetLabel},
	"org.eclipse.elk.edgeLabels.placement":                                                {Kind: KindEnum, Targets: TargetLabel},
	"org.eclipse.elk.edgeRouting":                                                         {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.expandNodes":                                                         {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.font.name":                                                           {Kind: KindString, Targets: TargetLabel},
	"org.eclipse.elk.font.size":                                                           {Kind: KindInt, Targets: TargetLabel},
	"org.eclipse.elk.force.iterations":                                                    {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.force.model":                                                         {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.force.repulsion":                                                     {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.force.repulsivePower":                                                {Kind: KindInt, Targets: TargetEdge},
	"org.eclipse.elk.force.temperature":                                                   {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.graphviz.adaptPortPositions":                                         {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.graphviz.concentrate":                                                {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.graphviz.epsilon":                                                    {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.graphviz.iterationsFactor":                                           {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.graphviz.labelAngle":                                                 {Kind: KindFloat, Targets: TargetEdge},
	"org.eclipse.elk.graphviz.labelDistance":                                              {Kind: KindFloat, Targets: TargetEdge},
	"org.eclipse.elk.graphviz.layerSpacingFactor":                                         {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.graphviz.maxiter":                                                    {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.graphviz.neatoModel":                                                 {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.graphviz.overlapMode":                                                {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.hierarchyHandling":                                                   {Kind: KindEnum, Targets: TargetParent | TargetNode},
	"org.eclipse.elk.hypernode":                                                           {Kind: KindBool, Targets: TargetNode},
	"org.eclipse.elk.insideSelfLoops.activate":                                            {Kind: KindBool, Targets: TargetNode},
	"org.eclipse.elk.insideSelfLoops.yo":                                                  {Kind: KindBool, Targets: TargetEdge},
	"org.eclipse.elk.interactive":                                                         {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.interactiveLayout":                                                   {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.json.edgeCoords":                                                     {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.json.shapeCoords":                                                    {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.junctionPoints":                                                      {Kind: KindAny, Targets: TargetEdge},
	"org.eclipse.elk.labelManager":                                                        {Kind: KindAny, Targets: TargetParent | TargetLabel},
	"org.eclipse.elk.labels.labelManager":                                                 {Kind: KindAny, Targets: TargetParent | TargetLabel},
	"org.eclipse.elk.layered.allowNonFlowPortsToSwitchSides":                              {Kind: KindBool, Targets: TargetPort},
	"org.eclipse.elk.layered.compaction.connectedComponents":                              {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.layered.compaction.postCompaction.constraints":                       {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.compaction.postCompaction.strategy":                          {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.considerModelOrder.components":                               {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.considerModelOrder.crossingCounterNodeInfluence":             {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.layered.considerModelOrder.crossingCounterPortInfluence":             {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.layered.considerModelOrder.groupModelOrder.cbGroupOrderStrategy":     {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.considerModelOrder.groupModelOrder.cbPreferredSourceId":      {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.layered.considerModelOrder.groupModelOrder.cbPreferredTargetId":      {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.layered.considerModelOrder.groupModelOrder.cmEnforcedGroupOrders":    {Kind: KindIntList, Targets: TargetParent},
	"org.eclipse.elk.layered.considerModelOrder.groupModelOrder.cmGroupOrderStrategy":     {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.considerModelOrder.groupModelOrder.componentGroupId":         {Kind: KindInt, Targets: TargetNode | TargetEdge | TargetPort},
	"org.eclipse.elk.layered.considerModelOrder.groupModelOrder.crossingMinimizationId":   {Kind: KindInt, Targets: TargetNode | TargetEdge | TargetPort},
	"org.eclipse.elk.layered.considerModelOrder.groupModelOrder.cycleBreakingId":          {Kind: KindInt, Targets: TargetNode},
	"org.eclipse.elk.layered.considerModelOrder.longEdgeStrategy":                         {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.considerModelOrder.noModelOrder":                             {Kind: KindBool, Targets: TargetNode},
	"org.eclipse.elk.layered.considerModelOrder.portModelOrder":                           {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.layered.considerModelOrder.strategy":                                 {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.crossingMinimization.forceNodeModelOrder":                    {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.layered.crossingMinimization.greedySwitch.activationThreshold":       {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.layered.crossingMinimization.greedySwitch.type":                      {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.crossingMinimization.greedySwitchHierarchical.type":          {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.crossingMinimization.hierarchicalSweepiness":                 {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.layered.crossingMinimization.inLayerPredOf":                          {Kind: KindString, Targets: TargetNode},
	"org.eclipse.elk.layered.crossingMinimization.inLayerSuccOf":                          {Kind: KindString, Targets: TargetNode},
	"org.eclipse.elk.layered.crossingMinimization.positionChoiceConstraint":               {Kind: KindInt, Targets: TargetNode},
	"org.eclipse.elk.layered.crossingMinimization.positionId":                             {Kind: KindInt, Targets: TargetNode},
	"org.eclipse.elk.layered.crossingMinimization.semiInteractive":                        {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.layered.crossingMinimization.strategy":                               {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.cycleBreaking.strategy":                                      {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.directionCongruency":                                         {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.edgeLabels.centerLabelPlacementStrategy":                     {Kind: KindEnum, Targets: TargetParent | TargetLabel},
	"org.eclipse.elk.layered.edgeLabels.sideSelection":                                    {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.edgeRouting.polyline.slopedEdgeZoneWidth":                    {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.layered.edgeRouting.selfLoopDistribution":                            {Kind: KindEnum, Targets: TargetNode},
	"org.eclipse.elk.layered.edgeRouting.selfLoopOrdering":                                {Kind: KindEnum, Targets: TargetNode},
	"org.eclipse.elk.layered.edgeRouting.splines.mode":                                    {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.edgeRouting.splines.sloppy.layerSpacingFactor":               {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.layered.feedbackEdges":                                               {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.layered.generatePositionAndLayerIds":                                 {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.layered.highDegreeNodes.threshold":                                   {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.layered.highDegreeNodes.treatment":                                   {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.layered.highDegreeNodes.treeHeight":                                  {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.layered.interactiveReferencePoint":                                   {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.layerUnzipping.layerSplit":                                   {Kind: KindInt, Targets: TargetNode},
	"org.eclipse.elk.layered.layerUnzipping.minimizeEdgeLength":                           {Kind: KindBool, Targets: TargetNode},
	"org.eclipse.elk.layered.layerUnzipping.resetOnLongEdges":                             {Kind: KindBool, Targets: TargetNode},
	"org.eclipse.elk.layered.layerUnzipping.strategy":                                     {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.layering.coffmanGraham.layerBound":                           {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.layered.layering.layerChoiceConstraint":                              {Kind: KindInt, Targets: TargetNode},
	"org.eclipse.elk.layered.layering.layerConstraint":                                    {Kind: KindEnum, Targets: TargetNode},
	"org.eclipse.elk.layered.layering.layerId":                                            {Kind: KindInt, Targets: TargetNode},
	"org.eclipse.elk.layered.layering.minWidth.upperBoundOnWidth":                         {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.layered.layering.minWidth.upperLayerEstimationScalingFactor":         {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.layered.layering.nodePromotion.maxIterations":                        {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.layered.layering.nodePromotion.strategy":                             {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.layering.strategy":                                           {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.mergeEdges":                                                  {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.layered.mergeHierarchyEdges":                                         {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.layered.nodePlacement.bk.edgeStraightening":                          {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.nodePlacement.bk.fixedAlignment":                             {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.nodePlacement.favorStraightEdges":                            {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.layered.nodePlacement.linearSegments.deflectionDampening":            {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.layered.nodePlacement.networkSimplex.nodeFlexibility":                {Kind: KindEnum, Targets: TargetNode},
	"org.eclipse.elk.layered.nodePlacement.networkSimplex.nodeFlexibility.default":        {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.nodePlacement.strategy":                                      {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.portSortingStrategy":                                         {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.priority.direction":                                          {Kind: KindInt, Targets: TargetEdge},
	"org.eclipse.elk.layered.priority.shortness":                                          {Kind: KindInt, Targets: TargetEdge},
	"org.eclipse.elk.layered.priority.straightness":                                       {Kind: KindInt, Targets: TargetEdge},
	"org.eclipse.elk.layered.spacing.baseValue":                                           {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.layered.spacing.edgeEdgeBetweenLayers":                               {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.layered.spacing.edgeNodeBetweenLayers":                               {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.layered.spacing.nodeNodeBetweenLayers":                               {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.layered.thoroughness":                                                {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.layered.unnecessaryBendpoints":                                       {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.layered.wrapping.additionalEdgeSpacing":                              {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.layered.wrapping.correctionFactor":                                   {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.layered.wrapping.cutting.cuts":                                       {Kind: KindIntList, Targets: TargetParent},
	"org.eclipse.elk.layered.wrapping.cutting.msd.freedom":                                {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.layered.wrapping.cutting.strategy":                                   {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.wrapping.multiEdge.distancePenalty":                          {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.layered.wrapping.multiEdge.improveCuts":                              {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.layered.wrapping.multiEdge.improveWrappedEdges":                      {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.layered.wrapping.strategy":                                           {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layered.wrapping.validify.forbiddenIndices":                          {Kind: KindIntList, Targets: TargetParent},
	"org.eclipse.elk.layered.wrapping.validify.strategy":                                  {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.layoutAncestors":                                                     {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.margins":                                                             {Kind: KindAny, Targets: TargetNode},
	"org.eclipse.elk.maxAnimTime":                                                         {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.minAnimTime":                                                         {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.mrtree.compaction":                                                   {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.mrtree.edgeEndTextureLength":                                         {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.mrtree.edgeRoutingMode":                                              {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.mrtree.positionConstraint":                                           {Kind: KindInt, Targets: TargetNode},
	"org.eclipse.elk.mrtree.searchOrder":                                                  {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.mrtree.treeLevel":                                                    {Kind: KindInt, Targets: TargetNode},
	"org.eclipse.elk.mrtree.weighting":                                                    {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.noLayout":                                                            {Kind: KindBool, Targets: TargetNode | TargetEdge | TargetPort | TargetLabel},
	"org.eclipse.elk.nodeLabels.padding":                                                  {Kind: KindAny, Targets: TargetParent},
	"org.eclipse.elk.nodeLabels.placement":                                                {Kind: KindEnumSet, Targets: TargetNode | TargetLabel},
	"org.eclipse.elk.nodeSize.constraints":                                                {Kind: KindEnumSet, Targets: TargetNode},
	"org.eclipse.elk.nodeSize.fixedGraphSize":                                             {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.nodeSize.minimum":                                                    {Kind: KindAny, Targets: TargetNode},
	"org.eclipse.elk.nodeSize.options":                                                    {Kind: KindEnumSet, Targets: TargetNode},
	"org.eclipse.elk.omitNodeMicroLayout":                                                 {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.overlapRemoval.maxIterations":                                        {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.overlapRemoval.runScanline":                                          {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.padding":                                                             {Kind: KindAny, Targets: TargetParent | TargetNode},
	"org.eclipse.elk.partitioning.activate":                                               {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.partitioning.partition":                                              {Kind: KindInt, Targets: TargetParent | TargetNode},
	"org.eclipse.elk.polyomino.fill":                                                      {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.polyomino.highLevelSort":                                             {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.polyomino.lowLevelSort":                                              {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.polyomino.traversalStrategy":                                         {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.port.anchor":                                                         {Kind: KindAny, Targets: TargetPort},
	"org.eclipse.elk.port.borderOffset":                                                   {Kind: KindFloat, Targets: TargetPort},
	"org.eclipse.elk.port.index":                                                          {Kind: KindInt, Targets: TargetPort},
	"org.eclipse.elk.port.side":                                                           {Kind: KindEnum, Targets: TargetPort},
	"org.eclipse.elk.portAlignment.default":                                               {Kind: KindEnum, Targets: TargetNode},
	"org.eclipse.elk.portAlignment.east":                                                  {Kind: KindEnum, Targets: TargetNode},
	"org.eclipse.elk.portAlignment.north":                                                 {Kind: KindEnum, Targets: TargetNode},
	"org.eclipse.elk.portAlignment.south":                                                 {Kind: KindEnum, Targets: TargetNode},
	"org.eclipse.elk.portAlignment.west":                                                  {Kind: KindEnum, Targets: TargetNode},
	"org.eclipse.elk.portConstraints":                                                     {Kind: KindEnum, Targets: TargetNode},
	"org.eclipse.elk.portLabels.nextToPortIfPossible":                                     {Kind: KindBool, Targets: TargetNode},
	"org.eclipse.elk.portLabels.placement":                                                {Kind: KindEnumSet, Targets: TargetNode},
	"org.eclipse.elk.portLabels.treatAsGroup":                                             {Kind: KindBool, Targets: TargetNode},
	"org.eclipse.elk.position":                                                            {Kind: KindAny, Targets: TargetNode | TargetPort | TargetLabel},
	"org.eclipse.elk.priority":                                                            {Kind: KindInt, Targets: TargetNode | TargetEdge},
	"org.eclipse.elk.processingOrder.preferredRoot":                                       {Kind: KindString, Targets: TargetParent},
	"org.eclipse.elk.processingOrder.rootSelection":                                       {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.processingOrder.spanningTreeCostFunction":                            {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.processingOrder.treeConstruction":                                    {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.progressBar":                                                         {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.radial.centerOnRoot":                                                 {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.radial.compactionStepSize":                                           {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.radial.compactor":                                                    {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.radial.optimizationCriteria":                                         {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.radial.orderId":                                                      {Kind: KindInt, Targets: TargetNode},
	"org.eclipse.elk.radial.radius":                                                       {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.radial.rotate":                                                       {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.radial.rotation.computeAdditionalWedgeSpace":                         {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.radial.rotation.outgoingEdgeAngles":                                  {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.radial.rotation.targetAngle":                                         {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.radial.sorter":                                                       {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.radial.wedgeCriteria":                                                {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.randomSeed":                                                          {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.rectpacking.currentPosition":                                         {Kind: KindInt, Targets: TargetNode},
	"org.eclipse.elk.rectpacking.desiredPosition":                                         {Kind: KindInt, Targets: TargetNode},
	"org.eclipse.elk.rectpacking.inNewRow":                                                {Kind: KindBool, Targets: TargetNode},
	"org.eclipse.elk.rectpacking.orderBySize":                                             {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.rectpacking.packing.compaction.iterations":                           {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.rectpacking.packing.compaction.rowHeightReevaluation":                {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.rectpacking.packing.strategy":                                        {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.rectpacking.trybox":                                                  {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.rectpacking.whiteSpaceElimination.strategy":                          {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.rectpacking.widthApproximation.lastPlaceShift":                       {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.rectpacking.widthApproximation.optimizationGoal":                     {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.rectpacking.widthApproximation.strategy":                             {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.rectpacking.widthApproximation.targetWidth":                          {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.resolvedAlgorithm":                                                   {Kind: KindAny, Targets: TargetParent},
	"org.eclipse.elk.scaleFactor":                                                         {Kind: KindFloat, Targets: TargetNode},
	"org.eclipse.elk.separateConnectedComponents":                                         {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.softwrappingFuzziness":                                               {Kind: KindFloat, Targets: TargetLabel},
	"org.eclipse.elk.spacing.commentComment":                                              {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.spacing.commentNode":                                                 {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.spacing.componentComponent":                                          {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.spacing.edgeEdge":                                                    {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.spacing.edgeLabel":                                                   {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.spacing.edgeNode":                                                    {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.spacing.individual":                                                  {Kind: KindAny, Targets: TargetNode | TargetEdge | TargetPort | TargetLabel},
	"org.eclipse.elk.spacing.labelLabel":                                                  {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.spacing.labelNode":                                                   {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.spacing.labelPortHorizontal":                                         {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.spacing.labelPortVertical":                                           {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.spacing.nodeNode":                                                    {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.spacing.nodeSelfLoop":                                                {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.spacing.portPort":                                                    {Kind: KindFloat, Targets: TargetParent | TargetNode},
	"org.eclipse.elk.spacing.portsSurrounding":                                            {Kind: KindAny, Targets: TargetParent},
	"org.eclipse.elk.stress.desiredEdgeLength":                                            {Kind: KindFloat, Targets: TargetParent | TargetEdge},
	"org.eclipse.elk.stress.dimension":                                                    {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.stress.epsilon":                                                      {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.stress.fixed":                                                        {Kind: KindBool, Targets: TargetNode},
	"org.eclipse.elk.stress.iterationLimit":                                               {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.structure.structureExtractionStrategy":                               {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.topdown.hierarchicalNodeAspectRatio":                                 {Kind: KindFloat, Targets: TargetParent | TargetNode},
	"org.eclipse.elk.topdown.hierarchicalNodeWidth":                                       {Kind: KindFloat, Targets: TargetParent | TargetNode},
	"org.eclipse.elk.topdown.nodeType":                                                    {Kind: KindEnum, Targets: TargetNode},
	"org.eclipse.elk.topdown.scaleCap":                                                    {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.topdown.scaleFactor":                                                 {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.topdown.sizeApproximator":                                            {Kind: KindAny, Targets: TargetNode},
	"org.eclipse.elk.topdown.sizeCategories":                                              {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.topdown.sizeCategoriesHierarchicalNodeWeight":                        {Kind: KindInt, Targets: TargetParent},
	"org.eclipse.elk.topdownLayout":                                                       {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.topdownpacking.nodeArrangement.strategy":                             {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.topdownpacking.whitespaceElimination.strategy":                       {Kind: KindEnum, Targets: TargetParent},
	"org.eclipse.elk.underlyingLayoutAlgorithm":                                           {Kind: KindString, Targets: TargetParent},
	"org.eclipse.elk.validateGraph":                                                       {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.validateOptions":                                                     {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.vertiflex.considerNodeModelOrder":                                    {Kind: KindBool, Targets: TargetParent},
	"org.eclipse.elk.vertiflex.layerDistance":                                             {Kind: KindFloat, Targets: TargetParent},
	"org.eclipse.elk.vertiflex.layoutStrategy":                                            {Kind: KindEnum, Targets: TargetNode},
	"org.eclipse.elk.vertiflex.verticalConstraint":                                        {Kind: KindFloat, Targets: TargetNode},
	"org.eclipse.elk.zoomToFit":                                                           {Kind: KindBool, Targets: TargetParent},
}
